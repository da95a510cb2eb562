package cancel_reservation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-CourtService/internal/integrations/notifier"
)

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockWaitlistRepository struct {
	mock.Mock
}

func (m *MockWaitlistRepository) GetByCourtDateSlot(ctx context.Context, courtID int64, date time.Time, slot int) ([]*domain.WaitlistEntry, error) {
	args := m.Called(ctx, courtID, date, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.WaitlistEntry), args.Error(1)
}

// recordingNotifier фиксирует опубликованные события и сигналит о каждом
type recordingNotifier struct {
	mu     sync.Mutex
	events []notifier.SlotFreedEvent
	err    error
	done   chan struct{}
}

func newRecordingNotifier(err error) *recordingNotifier {
	return &recordingNotifier{err: err, done: make(chan struct{}, 1)}
}

func (n *recordingNotifier) NotifySlotFreed(ctx context.Context, event notifier.SlotFreedEvent) error {
	n.mu.Lock()
	n.events = append(n.events, event)
	n.mu.Unlock()
	n.done <- struct{}{}
	return n.err
}

func (n *recordingNotifier) waitForEvent(t *testing.T) notifier.SlotFreedEvent {
	t.Helper()
	select {
	case <-n.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification")
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.events[len(n.events)-1]
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testDate = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

func storedReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:      10,
		UserID:  "user-1",
		CourtID: 2,
		Date:    testDate,
		Slot:    18,
	}
}

func TestUseCase_Execute_NotifiesEarliestWaitlisted(t *testing.T) {
	reservationMock := new(MockReservationRepository)
	waitlistMock := new(MockWaitlistRepository)
	notify := newRecordingNotifier(nil)
	uc := NewUseCase(reservationMock, waitlistMock, notify, fakeTxManager{}, nopLogger{})

	reservationMock.On("GetByID", mock.Anything, int64(10)).Return(storedReservation(), nil)
	reservationMock.On("Delete", mock.Anything, int64(10)).Return(nil)

	// Записи листа ожидания приходят отсортированными по created_at
	waitlistMock.On("GetByCourtDateSlot", mock.Anything, int64(2), testDate, 18).
		Return([]*domain.WaitlistEntry{
			{ID: 1, UserID: "waiter-early", CourtID: 2, Date: testDate, Slot: 18},
			{ID: 2, UserID: "waiter-late", CourtID: 2, Date: testDate, Slot: 18},
		}, nil)

	err := uc.Execute(context.Background(), 10, "user-1")
	require.NoError(t, err)

	// Уведомляется только самая ранняя запись, бронирование за неё не создается
	event := notify.waitForEvent(t)
	assert.Equal(t, "waiter-early", event.UserID)
	assert.Equal(t, int64(2), event.CourtID)
	assert.Equal(t, "2026-03-14", event.Date)
	assert.Equal(t, 18, event.Slot)

	reservationMock.AssertExpectations(t)
}

func TestUseCase_Execute_NoWaitlistNoNotification(t *testing.T) {
	reservationMock := new(MockReservationRepository)
	waitlistMock := new(MockWaitlistRepository)
	notify := newRecordingNotifier(nil)
	uc := NewUseCase(reservationMock, waitlistMock, notify, fakeTxManager{}, nopLogger{})

	reservationMock.On("GetByID", mock.Anything, int64(10)).Return(storedReservation(), nil)
	reservationMock.On("Delete", mock.Anything, int64(10)).Return(nil)
	waitlistMock.On("GetByCourtDateSlot", mock.Anything, int64(2), testDate, 18).
		Return([]*domain.WaitlistEntry{}, nil)

	err := uc.Execute(context.Background(), 10, "user-1")
	require.NoError(t, err)

	select {
	case <-notify.done:
		t.Fatal("notification sent for empty waitlist")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUseCase_Execute_NotifyFailureDoesNotFailCancel(t *testing.T) {
	reservationMock := new(MockReservationRepository)
	waitlistMock := new(MockWaitlistRepository)
	notify := newRecordingNotifier(errors.New("broker unavailable"))
	uc := NewUseCase(reservationMock, waitlistMock, notify, fakeTxManager{}, nopLogger{})

	reservationMock.On("GetByID", mock.Anything, int64(10)).Return(storedReservation(), nil)
	reservationMock.On("Delete", mock.Anything, int64(10)).Return(nil)
	waitlistMock.On("GetByCourtDateSlot", mock.Anything, int64(2), testDate, 18).
		Return([]*domain.WaitlistEntry{
			{ID: 1, UserID: "waiter", CourtID: 2, Date: testDate, Slot: 18},
		}, nil)

	// Отмена уже зафиксирована — сбой уведомления её не отменяет
	err := uc.Execute(context.Background(), 10, "user-1")
	require.NoError(t, err)

	notify.waitForEvent(t)
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	reservationMock := new(MockReservationRepository)
	uc := NewUseCase(reservationMock, new(MockWaitlistRepository), newRecordingNotifier(nil),
		fakeTxManager{}, nopLogger{})

	reservationMock.On("GetByID", mock.Anything, int64(99)).
		Return(nil, reservationRepo.ErrReservationNotFound)

	err := uc.Execute(context.Background(), 99, "user-1")
	assert.ErrorIs(t, err, ErrReservationNotFound)
	reservationMock.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_AccessDenied(t *testing.T) {
	reservationMock := new(MockReservationRepository)
	uc := NewUseCase(reservationMock, new(MockWaitlistRepository), newRecordingNotifier(nil),
		fakeTxManager{}, nopLogger{})

	reservationMock.On("GetByID", mock.Anything, int64(10)).Return(storedReservation(), nil)

	err := uc.Execute(context.Background(), 10, "intruder")
	assert.ErrorIs(t, err, ErrAccessDenied)
	reservationMock.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc := NewUseCase(new(MockReservationRepository), new(MockWaitlistRepository),
		newRecordingNotifier(nil), fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), 0, "user-1")
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = uc.Execute(context.Background(), 10, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
