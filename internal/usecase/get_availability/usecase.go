package get_availability

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// UseCase use case получения карты занятости на календарный день
//
// Занятость определяется только точным совпадением дня и целочисленного
// слота: соседние слоты и соседние дни друг на друга не влияют.
type UseCase struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute собирает занятые корты и тренеры по каждому слоту дня
func (uc *UseCase) Execute(ctx context.Context, date time.Time) (*Response, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	resp := &Response{
		Date:  date.Format(domain.DateFormat),
		Slots: make([]SlotAvailability, 0, domain.MaxSlot-domain.MinSlot+1),
	}

	for _, slot := range domain.Slots() {
		reservations, err := uc.reservationRepo.GetByDateSlot(ctx, date, slot)
		if err != nil {
			uc.logger.Error("GetAvailability: failed to get reservations for date=%s, slot=%d: %v",
				date.Format(domain.DateFormat), slot, err)
			return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		resp.Slots = append(resp.Slots, buildSlotAvailability(slot, reservations))
	}

	return resp, nil
}

// buildSlotAvailability собирает отсортированные наборы занятых ID слота
func buildSlotAvailability(slot int, reservations []*domain.Reservation) SlotAvailability {
	courtIDs := make([]int64, 0, len(reservations))
	coachIDs := make([]int64, 0, len(reservations))

	for _, res := range reservations {
		courtIDs = append(courtIDs, res.CourtID)
		if res.CoachID != nil {
			coachIDs = append(coachIDs, *res.CoachID)
		}
	}

	sort.Slice(courtIDs, func(i, j int) bool { return courtIDs[i] < courtIDs[j] })
	sort.Slice(coachIDs, func(i, j int) bool { return coachIDs[i] < coachIDs[j] })

	return SlotAvailability{
		Slot:             slot,
		OccupiedCourtIDs: courtIDs,
		OccupiedCoachIDs: coachIDs,
	}
}
