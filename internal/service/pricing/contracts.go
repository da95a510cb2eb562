package pricing

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// CatalogRepository интерфейс репозитория справочника ресурсов
type CatalogRepository interface {
	GetCourt(ctx context.Context, id int64) (*domain.Court, error)
	GetCoach(ctx context.Context, id int64) (*domain.Coach, error)
	GetEquipment(ctx context.Context, id int64) (*domain.Equipment, error)
}

// RuleRepository интерфейс репозитория правил ценообразования
// List обязан возвращать правила в порядке создания (id ASC)
type RuleRepository interface {
	List(ctx context.Context) ([]*domain.PricingRule, error)
	Create(ctx context.Context, rule *domain.PricingRule) (*domain.PricingRule, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
