package cancel_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/internal/integrations/notifier"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

// WaitlistRepository интерфейс репозитория листа ожидания
// Записи возвращаются в порядке создания (created_at ASC)
type WaitlistRepository interface {
	GetByCourtDateSlot(ctx context.Context, courtID int64, date time.Time, slot int) ([]*domain.WaitlistEntry, error)
}

// Notifier интерфейс диспетчера уведомлений
type Notifier interface {
	NotifySlotFreed(ctx context.Context, event notifier.SlotFreedEvent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
