package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByDateSlot(ctx context.Context, date time.Time, slot int) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
