package create_rule

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/pricing/models"
)

type PricingService interface {
	CreateRule(ctx context.Context, req *models.CreateRuleRequest) (*models.RuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
