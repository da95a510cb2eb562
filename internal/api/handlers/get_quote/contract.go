package get_quote

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/pricing/models"
)

type PricingService interface {
	Calculate(ctx context.Context, req *models.CalculateRequest) (*models.PriceQuote, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
