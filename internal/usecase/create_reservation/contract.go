package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	pricingModels "github.com/m04kA/SMC-CourtService/internal/service/pricing/models"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetByDateSlot(ctx context.Context, date time.Time, slot int) ([]*domain.Reservation, error)
}

// CatalogRepository интерфейс репозитория справочника (проверка запаса инвентаря)
type CatalogRepository interface {
	GetEquipment(ctx context.Context, id int64) (*domain.Equipment, error)
}

// PricingService интерфейс движка ценообразования
// Внутри транзакции бронирования даёт авторитетную цену — цена от клиента не принимается
type PricingService interface {
	Calculate(ctx context.Context, req *pricingModels.CalculateRequest) (*pricingModels.PriceQuote, error)
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
