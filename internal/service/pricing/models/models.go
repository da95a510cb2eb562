package models

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// CalculateRequest запрос на расчет стоимости бронирования
type CalculateRequest struct {
	CourtID   int64
	Date      time.Time
	Slot      int
	CoachID   *int64 // nil — без тренера
	Equipment domain.EquipmentMap
}

// AppliedRule сработавшее правило в расшифровке цены
// Effect — строка вида "x1.2" (multiplier) или "+50" (fixed_add)
type AppliedRule struct {
	Name   string  `json:"name"`
	Effect string  `json:"effect"`
	Value  float64 `json:"value"`
}

// Breakdown постатейная расшифровка стоимости
type Breakdown struct {
	Base       float64       `json:"base"`       // Базовая цена корта
	Rules      []AppliedRule `json:"rules"`      // Сработавшие правила в порядке применения
	CourtFinal float64       `json:"courtFinal"` // Стоимость корта после правил
	Coach      float64       `json:"coach"`      // Ставка тренера (0 без тренера)
	Equipment  float64       `json:"equipment"`  // Суммарная стоимость инвентаря
}

// PriceQuote итоговая стоимость с расшифровкой
type PriceQuote struct {
	TotalPrice float64   `json:"totalPrice"`
	Breakdown  Breakdown `json:"breakdown"`
}

// CreateRuleRequest запрос на создание правила ценообразования
type CreateRuleRequest struct {
	Name      string
	Type      string
	Value     float64
	Condition domain.RuleCondition
}

// RuleResponse правило ценообразования в ответе API
type RuleResponse struct {
	ID        int64                `json:"id"`
	Name      string               `json:"name"`
	Type      string               `json:"type"`
	Value     float64              `json:"value"`
	Condition domain.RuleCondition `json:"condition"`
	CreatedAt time.Time            `json:"createdAt"`
}

// FromDomainRule конвертирует доменное правило в ответ API
func FromDomainRule(rule *domain.PricingRule) *RuleResponse {
	return &RuleResponse{
		ID:        rule.ID,
		Name:      rule.Name,
		Type:      string(rule.Type),
		Value:     rule.Value,
		Condition: rule.Condition,
		CreatedAt: rule.CreatedAt,
	}
}

// FromDomainRuleList конвертирует список доменных правил в ответ API
func FromDomainRuleList(rules []*domain.PricingRule) []*RuleResponse {
	result := make([]*RuleResponse, 0, len(rules))
	for _, rule := range rules {
		result = append(result, FromDomainRule(rule))
	}
	return result
}
