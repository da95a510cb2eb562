package waitlist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/catalog"
)

// JoinRequest запрос на вступление в лист ожидания
type JoinRequest struct {
	UserID  string
	CourtID int64
	Date    time.Time
	Slot    int
}

// Service сервис листа ожидания
type Service struct {
	waitlistRepo WaitlistRepository
	catalogRepo  CatalogRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса листа ожидания
func NewService(waitlistRepo WaitlistRepository, catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		waitlistRepo: waitlistRepo,
		catalogRepo:  catalogRepo,
		logger:       logger,
	}
}

// Join добавляет клиента в лист ожидания на (корт, дата, слот)
//
// Запись добавляется безусловно: занятость слота НЕ проверяется — клиент
// обычно вступает в лист, уже увидев конфликт, но операция этого не требует.
func (s *Service) Join(ctx context.Context, req *JoinRequest) (*domain.WaitlistEntry, error) {
	s.logger.Info("Join: user=%s, court=%d, date=%s, slot=%d",
		req.UserID, req.CourtID, req.Date.Format(domain.DateFormat), req.Slot)

	if err := validateJoinRequest(req); err != nil {
		s.logger.Warn("Join: validation failed: %v", err)
		return nil, err
	}

	// Существование корта проверяем, чтобы вернуть понятный NotFound
	// вместо ошибки внешнего ключа
	if _, err := s.catalogRepo.GetCourt(ctx, req.CourtID); err != nil {
		if errors.Is(err, catalogRepo.ErrCourtNotFound) {
			s.logger.Warn("Join: court id=%d not found", req.CourtID)
			return nil, fmt.Errorf("%w: id=%d", ErrCourtNotFound, req.CourtID)
		}
		s.logger.Error("Join: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	entry := &domain.WaitlistEntry{
		UserID:  req.UserID,
		CourtID: req.CourtID,
		Date:    req.Date,
		Slot:    req.Slot,
	}

	created, err := s.waitlistRepo.Create(ctx, entry)
	if err != nil {
		s.logger.Error("Join: repository error: %v", err)
		return nil, fmt.Errorf("%w: Join - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Join: successfully created waitlist entry id=%d", created.ID)
	return created, nil
}

// validateJoinRequest валидирует запрос на вступление в лист ожидания
func validateJoinRequest(req *JoinRequest) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if !domain.IsValidSlot(req.Slot) {
		return fmt.Errorf("%w: slot %d is out of range %d..%d", ErrInvalidInput, req.Slot, domain.MinSlot, domain.MaxSlot)
	}
	return nil
}
