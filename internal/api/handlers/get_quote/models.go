package get_quote

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	pricingModels "github.com/m04kA/SMC-CourtService/internal/service/pricing/models"
)

// QuoteRequest HTTP request model
// Ключи equipment — ID позиций инвентаря в виде строк (JSON-объект)
type QuoteRequest struct {
	CourtID   int64          `json:"courtId"`
	Date      string         `json:"date"` // "2026-03-14"
	Slot      int            `json:"slot"`
	CoachID   *int64         `json:"coachId,omitempty"`
	Equipment map[string]int `json:"equipment,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *QuoteRequest) ToServiceRequest() (*pricingModels.CalculateRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	equipment, err := parseEquipment(r.Equipment)
	if err != nil {
		return nil, err
	}

	// Сигнальные значения "без тренера" в оценке цены игнорируются
	coachID := r.CoachID
	if coachID != nil && *coachID <= 0 {
		coachID = nil
	}

	return &pricingModels.CalculateRequest{
		CourtID:   r.CourtID,
		Date:      date,
		Slot:      r.Slot,
		CoachID:   coachID,
		Equipment: equipment,
	}, nil
}

// parseEquipment конвертирует строковые ключи JSON-объекта инвентаря в ID
func parseEquipment(raw map[string]int) (domain.EquipmentMap, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	equipment := make(domain.EquipmentMap, len(raw))
	for key, qty := range raw {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid equipment id %q", key)
		}
		equipment[id] = qty
	}
	return equipment, nil
}
