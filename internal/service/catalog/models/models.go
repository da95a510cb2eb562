package models

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	pricingModels "github.com/m04kA/SMC-CourtService/internal/service/pricing/models"
)

// CourtResponse корт в ответе API
type CourtResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	BasePrice float64 `json:"basePrice"`
}

// CoachResponse тренер в ответе API
type CoachResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	HourlyRate float64 `json:"hourlyRate"`
}

// EquipmentResponse позиция инвентаря в ответе API
type EquipmentResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Stock int     `json:"stock"`
	Price float64 `json:"price"`
}

// CatalogResponse полный справочник для клиента: ресурсы и правила ценообразования
type CatalogResponse struct {
	Courts    []*CourtResponse              `json:"courts"`
	Coaches   []*CoachResponse              `json:"coaches"`
	Equipment []*EquipmentResponse          `json:"equipment"`
	Rules     []*pricingModels.RuleResponse `json:"rules"`
}

// CreateCourtRequest запрос на создание корта
type CreateCourtRequest struct {
	Name      string
	Type      string
	BasePrice float64
}

// CreatedCourtResponse созданный корт в ответе API
type CreatedCourtResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	BasePrice float64   `json:"basePrice"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainCourt конвертирует доменный корт в ответ API
func FromDomainCourt(court *domain.Court) *CourtResponse {
	return &CourtResponse{
		ID:        court.ID,
		Name:      court.Name,
		Type:      string(court.Type),
		BasePrice: court.BasePrice,
	}
}

// FromDomainCoach конвертирует доменного тренера в ответ API
func FromDomainCoach(coach *domain.Coach) *CoachResponse {
	return &CoachResponse{
		ID:         coach.ID,
		Name:       coach.Name,
		HourlyRate: coach.HourlyRate,
	}
}

// FromDomainEquipment конвертирует доменную позицию инвентаря в ответ API
func FromDomainEquipment(item *domain.Equipment) *EquipmentResponse {
	return &EquipmentResponse{
		ID:    item.ID,
		Name:  item.Name,
		Stock: item.Stock,
		Price: item.Price,
	}
}
