package models

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// ReservationResponse бронирование в ответе API
type ReservationResponse struct {
	ID         int64          `json:"id"`
	UserID     string         `json:"userId"`
	CourtID    int64          `json:"courtId"`
	CoachID    *int64         `json:"coachId,omitempty"`
	Date       string         `json:"date"` // YYYY-MM-DD
	Slot       int            `json:"slot"`
	Equipment  map[string]int `json:"equipment"`
	TotalPrice float64        `json:"totalPrice"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// ReservationListResponse список бронирований в ответе API
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	Total        int                    `json:"total"`
}

// FromDomainReservation конвертирует доменное бронирование в ответ API
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	equipment := make(map[string]int, len(res.Equipment))
	for id, qty := range res.Equipment {
		equipment[strconv.FormatInt(id, 10)] = qty
	}

	return &ReservationResponse{
		ID:         res.ID,
		UserID:     res.UserID,
		CourtID:    res.CourtID,
		CoachID:    res.CoachID,
		Date:       res.Date.Format(domain.DateFormat),
		Slot:       res.Slot,
		Equipment:  equipment,
		TotalPrice: res.TotalPrice,
		CreatedAt:  res.CreatedAt,
	}
}

// FromDomainReservationList конвертирует список доменных бронирований в ответ API
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	result := make([]*ReservationResponse, 0, len(reservations))
	for _, res := range reservations {
		result = append(result, FromDomainReservation(res))
	}
	return &ReservationListResponse{
		Reservations: result,
		Total:        len(result),
	}
}
