package create_court

import (
	catalogModels "github.com/m04kA/SMC-CourtService/internal/service/catalog/models"
)

// CreateCourtRequest HTTP request model
type CreateCourtRequest struct {
	Name      string  `json:"name"`
	Type      string  `json:"type"` // "indoor" | "outdoor"
	BasePrice float64 `json:"basePrice"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateCourtRequest) ToServiceRequest() *catalogModels.CreateCourtRequest {
	return &catalogModels.CreateCourtRequest{
		Name:      r.Name,
		Type:      r.Type,
		BasePrice: r.BasePrice,
	}
}
