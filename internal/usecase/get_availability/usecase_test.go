package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/ptr"
)

// fakeReservationRepo раздает бронирования по слотам
type fakeReservationRepo struct {
	bySlot map[int][]*domain.Reservation
}

func (f *fakeReservationRepo) GetByDateSlot(ctx context.Context, date time.Time, slot int) ([]*domain.Reservation, error) {
	return f.bySlot[slot], nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testDate = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

func TestUseCase_Execute_FullDayMap(t *testing.T) {
	repo := &fakeReservationRepo{
		bySlot: map[int][]*domain.Reservation{
			18: {
				{ID: 1, CourtID: 3, CoachID: ptr.Ptr(int64(2)), Date: testDate, Slot: 18},
				{ID: 2, CourtID: 1, Date: testDate, Slot: 18},
			},
			9: {
				{ID: 3, CourtID: 2, Date: testDate, Slot: 9},
			},
		},
	}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), testDate)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-14", resp.Date)
	require.Len(t, resp.Slots, 13)

	// Слоты идут по порядку 9..21
	assert.Equal(t, 9, resp.Slots[0].Slot)
	assert.Equal(t, 21, resp.Slots[12].Slot)

	// Занятые ID отсортированы, тренер без бронирования не попадает в набор
	evening := resp.Slots[9]
	require.Equal(t, 18, evening.Slot)
	assert.Equal(t, []int64{1, 3}, evening.OccupiedCourtIDs)
	assert.Equal(t, []int64{2}, evening.OccupiedCoachIDs)

	morning := resp.Slots[0]
	assert.Equal(t, []int64{2}, morning.OccupiedCourtIDs)
	assert.Empty(t, morning.OccupiedCoachIDs)

	// Свободный слот — пустые наборы, а не nil в JSON
	free := resp.Slots[1]
	assert.NotNil(t, free.OccupiedCourtIDs)
	assert.Empty(t, free.OccupiedCourtIDs)
}

func TestUseCase_Execute_ZeroDate(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), time.Time{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
