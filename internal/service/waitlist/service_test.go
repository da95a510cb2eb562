package waitlist

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/catalog"
)

type MockWaitlistRepository struct {
	mock.Mock
}

func (m *MockWaitlistRepository) Create(ctx context.Context, entry *domain.WaitlistEntry) (*domain.WaitlistEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WaitlistEntry), args.Error(1)
}

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) GetCourt(ctx context.Context, id int64) (*domain.Court, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Court), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testDate = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

func TestService_Join_Unconditional(t *testing.T) {
	waitlistMock := new(MockWaitlistRepository)
	catalogMock := new(MockCatalogRepository)
	svc := NewService(waitlistMock, catalogMock, nopLogger{})

	catalogMock.On("GetCourt", mock.Anything, int64(1)).Return(&domain.Court{
		ID: 1, Name: "North Indoor", Type: domain.CourtTypeIndoor, BasePrice: 100.0,
	}, nil)

	// Запись добавляется без проверки занятости слота
	waitlistMock.On("Create", mock.Anything, mock.MatchedBy(func(e *domain.WaitlistEntry) bool {
		return e.UserID == "user-1" && e.CourtID == 1 && e.Slot == 18
	})).Return(&domain.WaitlistEntry{
		ID: 5, UserID: "user-1", CourtID: 1, Date: testDate, Slot: 18,
	}, nil)

	entry, err := svc.Join(context.Background(), &JoinRequest{
		UserID:  "user-1",
		CourtID: 1,
		Date:    testDate,
		Slot:    18,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), entry.ID)
	waitlistMock.AssertExpectations(t)
}

func TestService_Join_CourtNotFound(t *testing.T) {
	waitlistMock := new(MockWaitlistRepository)
	catalogMock := new(MockCatalogRepository)
	svc := NewService(waitlistMock, catalogMock, nopLogger{})

	catalogMock.On("GetCourt", mock.Anything, int64(99)).Return(nil, catalogRepo.ErrCourtNotFound)

	_, err := svc.Join(context.Background(), &JoinRequest{
		UserID:  "user-1",
		CourtID: 99,
		Date:    testDate,
		Slot:    18,
	})

	assert.ErrorIs(t, err, ErrCourtNotFound)
	waitlistMock.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Join_Validation(t *testing.T) {
	svc := NewService(new(MockWaitlistRepository), new(MockCatalogRepository), nopLogger{})

	tests := []struct {
		name string
		req  *JoinRequest
	}{
		{"empty user", &JoinRequest{CourtID: 1, Date: testDate, Slot: 18}},
		{"zero court", &JoinRequest{UserID: "u", Date: testDate, Slot: 18}},
		{"zero date", &JoinRequest{UserID: "u", CourtID: 1, Slot: 18}},
		{"slot out of range", &JoinRequest{UserID: "u", CourtID: 1, Date: testDate, Slot: 22}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Join(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
