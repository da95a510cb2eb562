package create_reservation

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	pricingModels "github.com/m04kA/SMC-CourtService/internal/service/pricing/models"
	createReservation "github.com/m04kA/SMC-CourtService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
// Ключи equipment — ID позиций инвентаря в виде строк (JSON-объект)
type CreateReservationRequest struct {
	CourtID   int64          `json:"courtId"`
	Date      string         `json:"date"` // "2026-03-14"
	Slot      int            `json:"slot"`
	CoachID   *int64         `json:"coachId,omitempty"`
	Equipment map[string]int `json:"equipment,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID         int64                   `json:"id"`
	UserID     string                  `json:"userId"`
	CourtID    int64                   `json:"courtId"`
	CoachID    *int64                  `json:"coachId,omitempty"`
	Date       string                  `json:"date"`
	Slot       int                     `json:"slot"`
	Equipment  map[string]int          `json:"equipment"`
	TotalPrice float64                 `json:"totalPrice"`
	Breakdown  pricingModels.Breakdown `json:"breakdown"`
	CreatedAt  string                  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID string) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	equipment, err := parseEquipment(r.Equipment)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		UserID:    userID,
		CourtID:   r.CourtID,
		Date:      date,
		Slot:      r.Slot,
		CoachID:   r.CoachID,
		Equipment: equipment,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	equipment := make(map[string]int, len(resp.Equipment))
	for id, qty := range resp.Equipment {
		equipment[strconv.FormatInt(id, 10)] = qty
	}

	return &ReservationResponse{
		ID:         resp.ID,
		UserID:     resp.UserID,
		CourtID:    resp.CourtID,
		CoachID:    resp.CoachID,
		Date:       resp.Date.Format(domain.DateFormat),
		Slot:       resp.Slot,
		Equipment:  equipment,
		TotalPrice: resp.TotalPrice,
		Breakdown:  resp.Breakdown,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
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
