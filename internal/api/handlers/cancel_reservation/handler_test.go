package cancel_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/api/middleware"
	cancelReservation "github.com/m04kA/SMC-CourtService/internal/usecase/cancel_reservation"
)

type fakeUseCase struct {
	err           error
	gotID         int64
	gotUserID     string
	executedTimes int
}

func (f *fakeUseCase) Execute(ctx context.Context, reservationID int64, userID string) error {
	f.executedTimes++
	f.gotID = reservationID
	f.gotUserID = userID
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newRouter(uc *fakeUseCase) *mux.Router {
	r := mux.NewRouter()
	protected := r.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/api/v1/reservations/{reservationId}",
		NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodDelete)
	return r
}

func doDelete(t *testing.T, router *mux.Router, path, userID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, path, nil)
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Success(t *testing.T) {
	uc := &fakeUseCase{}
	rec := doDelete(t, newRouter(uc), "/api/v1/reservations/10", "user-1")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(10), uc.gotID)
	assert.Equal(t, "user-1", uc.gotUserID)
}

func TestHandler_MissingUserID(t *testing.T) {
	uc := &fakeUseCase{}
	rec := doDelete(t, newRouter(uc), "/api/v1/reservations/10", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, uc.executedTimes)
}

func TestHandler_InvalidID(t *testing.T) {
	uc := &fakeUseCase{}
	rec := doDelete(t, newRouter(uc), "/api/v1/reservations/abc", "user-1")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, uc.executedTimes)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", cancelReservation.ErrReservationNotFound, http.StatusNotFound},
		{"access denied", cancelReservation.ErrAccessDenied, http.StatusForbidden},
		{"invalid input", cancelReservation.ErrInvalidInput, http.StatusBadRequest},
		{"internal", cancelReservation.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.err}
			rec := doDelete(t, newRouter(uc), "/api/v1/reservations/10", "user-1")

			require.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}
