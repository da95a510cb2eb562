package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// RuleType вид правила ценообразования
type RuleType string

const (
	// RuleTypeMultiplier умножает текущую стоимость корта на Value
	RuleTypeMultiplier RuleType = "multiplier"
	// RuleTypeFixedAdd прибавляет к текущей стоимости корта фиксированную сумму Value
	RuleTypeFixedAdd RuleType = "fixed_add"
)

// IsValid проверяет, что вид правила допустим
func (t RuleType) IsValid() bool {
	return t == RuleTypeMultiplier || t == RuleTypeFixedAdd
}

// RuleCondition условие применимости правила
//
// Правило применяется, только если выполнены ВСЕ заполненные поля условия.
// Пустое условие означает, что правило применяется всегда.
type RuleCondition struct {
	Days      []int      `json:"days,omitempty"`      // Дни недели (0=воскресенье .. 6=суббота)
	Hours     []int      `json:"hours,omitempty"`     // Часы начала слотов
	CourtType *CourtType `json:"courtType,omitempty"` // Тип корта
}

// Matches проверяет применимость условия к контексту бронирования
func (c RuleCondition) Matches(dayOfWeek, slot int, courtType CourtType) bool {
	if len(c.Days) > 0 && !containsInt(c.Days, dayOfWeek) {
		return false
	}
	if len(c.Hours) > 0 && !containsInt(c.Hours, slot) {
		return false
	}
	if c.CourtType != nil && *c.CourtType != courtType {
		return false
	}
	return true
}

// Validate проверяет корректность условия
func (c RuleCondition) Validate() error {
	for _, d := range c.Days {
		if d < 0 || d > 6 {
			return fmt.Errorf("day of week %d is out of range 0..6", d)
		}
	}
	for _, h := range c.Hours {
		if h < MinSlot || h > MaxSlot {
			return fmt.Errorf("hour %d is out of slot range %d..%d", h, MinSlot, MaxSlot)
		}
	}
	if c.CourtType != nil && !c.CourtType.IsValid() {
		return fmt.Errorf("unknown court type %q", *c.CourtType)
	}
	return nil
}

// Value сериализует условие в JSONB
func (c RuleCondition) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan десериализует условие из JSONB
func (c *RuleCondition) Scan(src interface{}) error {
	if src == nil {
		*c = RuleCondition{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("domain: cannot scan %T into RuleCondition", src)
	}

	return json.Unmarshal(data, c)
}

// PricingRule правило корректировки цены корта
//
// Правила применяются к стоимости корта кумулятивно в порядке создания
// (id ASC). Порядок существенен: смешение multiplier и fixed_add правил
// при другом порядке даёт другой итог.
type PricingRule struct {
	ID        int64
	Name      string
	Type      RuleType
	Value     float64
	Condition RuleCondition
	CreatedAt time.Time
}

// Apply применяет правило к текущей стоимости корта
// Возвращает новую стоимость и строку эффекта для расшифровки ("x1.2" или "+50")
func (r *PricingRule) Apply(courtCost float64) (float64, string) {
	switch r.Type {
	case RuleTypeMultiplier:
		return courtCost * r.Value, "x" + strconv.FormatFloat(r.Value, 'f', -1, 64)
	case RuleTypeFixedAdd:
		return courtCost + r.Value, "+" + strconv.FormatFloat(r.Value, 'f', -1, 64)
	default:
		return courtCost, ""
	}
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
