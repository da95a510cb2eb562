package reservation

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

func setupMock(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewRepository(db)

	closer := func() {
		db.Close()
	}

	return repo, mock, closer
}

var testDate = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

func TestRepository_Create(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO reservations (user_id,court_id,coach_id,date,slot,equipment,total_price) "+
			"VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id, created_at")).
		WithArgs("user-1", int64(1), nil, testDate, 18, sqlmock.AnyArg(), 132.0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, now))

	created, err := repo.Create(context.Background(), &domain.Reservation{
		UserID:     "user-1",
		CourtID:    1,
		Date:       testDate,
		Slot:       18,
		Equipment:  domain.EquipmentMap{1: 2},
		TotalPrice: 132.0,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, user_id, court_id, coach_id, date, slot, equipment, total_price, created_at "+
			"FROM reservations WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "court_id", "coach_id", "date", "slot", "equipment", "total_price", "created_at",
		}))

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrReservationNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByDateSlot(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "court_id", "coach_id", "date", "slot", "equipment", "total_price", "created_at",
	}).
		AddRow(1, "user-a", 1, nil, testDate, 18, []byte(`{"1":2}`), 162.0, now).
		AddRow(2, "user-b", 3, 5, testDate, 18, []byte(`{}`), 84.0, now)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, user_id, court_id, coach_id, date, slot, equipment, total_price, created_at "+
			"FROM reservations WHERE date = $1 AND slot = $2 ORDER BY id ASC")).
		WithArgs(testDate, 18).
		WillReturnRows(rows)

	reservations, err := repo.GetByDateSlot(context.Background(), testDate, 18)
	require.NoError(t, err)
	require.Len(t, reservations, 2)

	assert.Nil(t, reservations[0].CoachID)
	assert.Equal(t, domain.EquipmentMap{1: 2}, reservations[0].Equipment)

	require.NotNil(t, reservations[1].CoachID)
	assert.Equal(t, int64(5), *reservations[1].CoachID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM reservations WHERE id = $1")).
		WithArgs(int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), 10)
	require.NoError(t, err)

	// Отсутствующая строка превращается в ErrReservationNotFound
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM reservations WHERE id = $1")).
		WithArgs(int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Delete(context.Background(), 11)
	assert.ErrorIs(t, err, ErrReservationNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
