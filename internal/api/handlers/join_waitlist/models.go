package join_waitlist

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	waitlistService "github.com/m04kA/SMC-CourtService/internal/service/waitlist"
)

// JoinWaitlistRequest HTTP request model
type JoinWaitlistRequest struct {
	CourtID int64  `json:"courtId"`
	Date    string `json:"date"` // "2026-03-14"
	Slot    int    `json:"slot"`
}

// WaitlistEntryResponse HTTP response model
type WaitlistEntryResponse struct {
	ID        int64  `json:"id"`
	UserID    string `json:"userId"`
	CourtID   int64  `json:"courtId"`
	Date      string `json:"date"`
	Slot      int    `json:"slot"`
	CreatedAt string `json:"createdAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *JoinWaitlistRequest) ToServiceRequest(userID string) (*waitlistService.JoinRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &waitlistService.JoinRequest{
		UserID:  userID,
		CourtID: r.CourtID,
		Date:    date,
		Slot:    r.Slot,
	}, nil
}

// FromDomainEntry конвертирует доменную запись листа ожидания в HTTP response
func FromDomainEntry(entry *domain.WaitlistEntry) *WaitlistEntryResponse {
	return &WaitlistEntryResponse{
		ID:        entry.ID,
		UserID:    entry.UserID,
		CourtID:   entry.CourtID,
		Date:      entry.Date.Format(domain.DateFormat),
		Slot:      entry.Slot,
		CreatedAt: entry.CreatedAt.Format(time.RFC3339),
	}
}
