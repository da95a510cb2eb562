package catalog

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// CatalogRepository интерфейс репозитория справочника ресурсов
type CatalogRepository interface {
	ListCourts(ctx context.Context) ([]*domain.Court, error)
	ListCoaches(ctx context.Context) ([]*domain.Coach, error)
	ListEquipment(ctx context.Context) ([]*domain.Equipment, error)
	CreateCourt(ctx context.Context, court *domain.Court) (*domain.Court, error)
}

// RuleRepository интерфейс репозитория правил ценообразования
type RuleRepository interface {
	List(ctx context.Context) ([]*domain.PricingRule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
