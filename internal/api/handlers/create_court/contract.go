package create_court

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/catalog/models"
)

type CatalogService interface {
	CreateCourt(ctx context.Context, req *models.CreateCourtRequest) (*models.CreatedCourtResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
