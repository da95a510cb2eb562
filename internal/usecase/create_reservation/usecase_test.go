package create_reservation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	pricingModels "github.com/m04kA/SMC-CourtService/internal/service/pricing/models"
	"github.com/m04kA/SMC-CourtService/pkg/ptr"
)

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	args := m.Called(ctx, res)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) GetByDateSlot(ctx context.Context, date time.Time, slot int) ([]*domain.Reservation, error) {
	args := m.Called(ctx, date, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) GetEquipment(ctx context.Context, id int64) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

type MockPricingService struct {
	mock.Mock
}

func (m *MockPricingService) Calculate(ctx context.Context, req *pricingModels.CalculateRequest) (*pricingModels.PriceQuote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricingModels.PriceQuote), args.Error(1)
}

// fakeTxManager выполняет транзакционную функцию напрямую, сериализуя
// конкурентные вызовы mutex'ом — как это делает SERIALIZABLE-транзакция
type fakeTxManager struct {
	mu sync.Mutex
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testDate = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		UserID:  "user-1",
		CourtID: 1,
		Date:    testDate,
		Slot:    18,
	}
}

func quoteFor(total float64) *pricingModels.PriceQuote {
	return &pricingModels.PriceQuote{
		TotalPrice: total,
		Breakdown:  pricingModels.Breakdown{Base: total, CourtFinal: total},
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	reservationMock := new(MockReservationRepository)
	catalogMock := new(MockCatalogRepository)
	pricingMock := new(MockPricingService)
	uc := NewUseCase(reservationMock, catalogMock, pricingMock, &fakeTxManager{}, nopLogger{})

	reservationMock.On("GetByDateSlot", mock.Anything, testDate, 18).
		Return([]*domain.Reservation{}, nil)
	pricingMock.On("Calculate", mock.Anything, mock.Anything).Return(quoteFor(132.0), nil)
	reservationMock.On("Create", mock.Anything, mock.Anything).
		Return(&domain.Reservation{
			ID: 7, UserID: "user-1", CourtID: 1, Date: testDate, Slot: 18, TotalPrice: 132.0,
		}, nil)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.InDelta(t, 132.0, resp.TotalPrice, 1e-9)
	reservationMock.AssertExpectations(t)
}

func TestUseCase_Execute_CourtAlreadyBooked(t *testing.T) {
	reservationMock := new(MockReservationRepository)
	catalogMock := new(MockCatalogRepository)
	pricingMock := new(MockPricingService)
	uc := NewUseCase(reservationMock, catalogMock, pricingMock, &fakeTxManager{}, nopLogger{})

	reservationMock.On("GetByDateSlot", mock.Anything, testDate, 18).
		Return([]*domain.Reservation{
			{ID: 1, UserID: "other", CourtID: 1, Date: testDate, Slot: 18},
		}, nil)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrCourtAlreadyBooked)
	reservationMock.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	pricingMock.AssertNotCalled(t, "Calculate", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_CoachUnavailable(t *testing.T) {
	reservationMock := new(MockReservationRepository)
	catalogMock := new(MockCatalogRepository)
	pricingMock := new(MockPricingService)
	uc := NewUseCase(reservationMock, catalogMock, pricingMock, &fakeTxManager{}, nopLogger{})

	// Тренер 5 занят на другом корте в том же слоте
	reservationMock.On("GetByDateSlot", mock.Anything, testDate, 18).
		Return([]*domain.Reservation{
			{ID: 1, UserID: "other", CourtID: 2, CoachID: ptr.Ptr(int64(5)), Date: testDate, Slot: 18},
		}, nil)

	req := validRequest()
	req.CoachID = ptr.Ptr(int64(5))

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrCoachUnavailable)
	reservationMock.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_EquipmentStockSharedPerSlot(t *testing.T) {
	// Запас 20, в слоте уже выдано 18 единиц по другим бронированиям
	existing := []*domain.Reservation{
		{ID: 1, UserID: "a", CourtID: 2, Date: testDate, Slot: 18, Equipment: domain.EquipmentMap{1: 10}},
		{ID: 2, UserID: "b", CourtID: 3, Date: testDate, Slot: 18, Equipment: domain.EquipmentMap{1: 8}},
	}

	t.Run("request exceeding remainder fails", func(t *testing.T) {
		reservationMock := new(MockReservationRepository)
		catalogMock := new(MockCatalogRepository)
		pricingMock := new(MockPricingService)
		uc := NewUseCase(reservationMock, catalogMock, pricingMock, &fakeTxManager{}, nopLogger{})

		reservationMock.On("GetByDateSlot", mock.Anything, testDate, 18).Return(existing, nil)
		catalogMock.On("GetEquipment", mock.Anything, int64(1)).
			Return(&domain.Equipment{ID: 1, Name: "Badminton Racket", Stock: 20, Price: 15.0}, nil)

		req := validRequest()
		req.Equipment = domain.EquipmentMap{1: 3}

		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrInsufficientStock)
		reservationMock.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("request within remainder succeeds", func(t *testing.T) {
		reservationMock := new(MockReservationRepository)
		catalogMock := new(MockCatalogRepository)
		pricingMock := new(MockPricingService)
		uc := NewUseCase(reservationMock, catalogMock, pricingMock, &fakeTxManager{}, nopLogger{})

		reservationMock.On("GetByDateSlot", mock.Anything, testDate, 18).Return(existing, nil)
		catalogMock.On("GetEquipment", mock.Anything, int64(1)).
			Return(&domain.Equipment{ID: 1, Name: "Badminton Racket", Stock: 20, Price: 15.0}, nil)
		pricingMock.On("Calculate", mock.Anything, mock.Anything).Return(quoteFor(130.0), nil)
		reservationMock.On("Create", mock.Anything, mock.Anything).
			Return(&domain.Reservation{ID: 3, UserID: "user-1", CourtID: 1, Date: testDate, Slot: 18}, nil)

		req := validRequest()
		req.Equipment = domain.EquipmentMap{1: 2}

		_, err := uc.Execute(context.Background(), req)

		require.NoError(t, err)
		reservationMock.AssertExpectations(t)
	})
}

func TestUseCase_Execute_CoachSentinelNormalized(t *testing.T) {
	for _, sentinel := range []*int64{nil, ptr.Ptr(int64(0)), ptr.Ptr(int64(-1))} {
		reservationMock := new(MockReservationRepository)
		catalogMock := new(MockCatalogRepository)
		pricingMock := new(MockPricingService)
		uc := NewUseCase(reservationMock, catalogMock, pricingMock, &fakeTxManager{}, nopLogger{})

		reservationMock.On("GetByDateSlot", mock.Anything, testDate, 18).
			Return([]*domain.Reservation{}, nil)
		pricingMock.On("Calculate", mock.Anything, mock.MatchedBy(func(req *pricingModels.CalculateRequest) bool {
			return req.CoachID == nil
		})).Return(quoteFor(100.0), nil)
		reservationMock.On("Create", mock.Anything, mock.MatchedBy(func(res *domain.Reservation) bool {
			return res.CoachID == nil
		})).Return(&domain.Reservation{ID: 1, UserID: "user-1", CourtID: 1, Date: testDate, Slot: 18}, nil)

		req := validRequest()
		req.CoachID = sentinel

		_, err := uc.Execute(context.Background(), req)

		require.NoError(t, err)
		pricingMock.AssertExpectations(t)
		reservationMock.AssertExpectations(t)
	}
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc := NewUseCase(new(MockReservationRepository), new(MockCatalogRepository),
		new(MockPricingService), &fakeTxManager{}, nopLogger{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty user", func(r *Request) { r.UserID = "" }},
		{"zero court", func(r *Request) { r.CourtID = 0 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"slot below range", func(r *Request) { r.Slot = 8 }},
		{"slot above range", func(r *Request) { r.Slot = 22 }},
		{"negative equipment qty", func(r *Request) { r.Equipment = domain.EquipmentMap{1: -1} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

// contentionStore разыгрывает гонку за последний корт: набор бронирований
// слота виден транзакции таким, каким он был на момент её начала
type contentionStore struct {
	mu           sync.Mutex
	reservations []*domain.Reservation
	nextID       int64
}

func (s *contentionStore) GetByDateSlot(ctx context.Context, date time.Time, slot int) ([]*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Reservation, len(s.reservations))
	copy(out, s.reservations)
	return out, nil
}

func (s *contentionStore) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	created := *res
	created.ID = s.nextID
	s.reservations = append(s.reservations, &created)
	return &created, nil
}

func TestUseCase_Execute_ConcurrentLastCourt(t *testing.T) {
	store := &contentionStore{}
	catalogMock := new(MockCatalogRepository)
	pricingMock := new(MockPricingService)
	pricingMock.On("Calculate", mock.Anything, mock.Anything).Return(quoteFor(100.0), nil)

	uc := NewUseCase(store, catalogMock, pricingMock, &fakeTxManager{}, nopLogger{})

	// Два клиента одновременно бронируют один корт на один слот
	var wg sync.WaitGroup
	errs := make([]error, 2)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := validRequest()
			req.UserID = []string{"user-a", "user-b"}[i]
			_, errs[i] = uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	// Ровно один выигрывает, второй получает конфликт корта
	winners, losers := 0, 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			require.ErrorIs(t, err, ErrCourtAlreadyBooked)
			losers++
		}
	}
	assert.Equal(t, 1, winners)
	assert.Equal(t, 1, losers)
	assert.Len(t, store.reservations, 1)
}
