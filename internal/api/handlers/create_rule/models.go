package create_rule

import (
	"github.com/m04kA/SMC-CourtService/internal/domain"
	pricingModels "github.com/m04kA/SMC-CourtService/internal/service/pricing/models"
)

// CreateRuleRequest HTTP request model
type CreateRuleRequest struct {
	Name      string               `json:"name"`
	Type      string               `json:"type"` // "multiplier" | "fixed_add"
	Value     float64              `json:"value"`
	Condition domain.RuleCondition `json:"condition"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateRuleRequest) ToServiceRequest() *pricingModels.CreateRuleRequest {
	return &pricingModels.CreateRuleRequest{
		Name:      r.Name,
		Type:      r.Type,
		Value:     r.Value,
		Condition: r.Condition,
	}
}
