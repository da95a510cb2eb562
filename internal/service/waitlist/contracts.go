package waitlist

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// WaitlistRepository интерфейс репозитория листа ожидания
type WaitlistRepository interface {
	Create(ctx context.Context, entry *domain.WaitlistEntry) (*domain.WaitlistEntry, error)
}

// CatalogRepository интерфейс репозитория справочника (проверка существования корта)
type CatalogRepository interface {
	GetCourt(ctx context.Context, id int64) (*domain.Court, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
