package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/internal/service/catalog/models"
	pricingModels "github.com/m04kA/SMC-CourtService/internal/service/pricing/models"
)

// Service сервис справочника ресурсов
// Во время бронирования справочник только читается; запись — административные операции
type Service struct {
	catalogRepo CatalogRepository
	ruleRepo    RuleRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса справочника
func NewService(catalogRepo CatalogRepository, ruleRepo RuleRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		ruleRepo:    ruleRepo,
		logger:      logger,
	}
}

// GetCatalog возвращает полный справочник: корты, тренеры, инвентарь и правила
// Снимок на момент запроса, ошибки хранилища пробрасываются без изменений
func (s *Service) GetCatalog(ctx context.Context) (*models.CatalogResponse, error) {
	courts, err := s.catalogRepo.ListCourts(ctx)
	if err != nil {
		s.logger.Error("GetCatalog: failed to list courts: %v", err)
		return nil, fmt.Errorf("%w: failed to list courts: %v", ErrInternal, err)
	}

	coaches, err := s.catalogRepo.ListCoaches(ctx)
	if err != nil {
		s.logger.Error("GetCatalog: failed to list coaches: %v", err)
		return nil, fmt.Errorf("%w: failed to list coaches: %v", ErrInternal, err)
	}

	equipment, err := s.catalogRepo.ListEquipment(ctx)
	if err != nil {
		s.logger.Error("GetCatalog: failed to list equipment: %v", err)
		return nil, fmt.Errorf("%w: failed to list equipment: %v", ErrInternal, err)
	}

	rules, err := s.ruleRepo.List(ctx)
	if err != nil {
		s.logger.Error("GetCatalog: failed to list pricing rules: %v", err)
		return nil, fmt.Errorf("%w: failed to list pricing rules: %v", ErrInternal, err)
	}

	resp := &models.CatalogResponse{
		Courts:    make([]*models.CourtResponse, 0, len(courts)),
		Coaches:   make([]*models.CoachResponse, 0, len(coaches)),
		Equipment: make([]*models.EquipmentResponse, 0, len(equipment)),
		Rules:     pricingModels.FromDomainRuleList(rules),
	}
	for _, court := range courts {
		resp.Courts = append(resp.Courts, models.FromDomainCourt(court))
	}
	for _, coach := range coaches {
		resp.Coaches = append(resp.Coaches, models.FromDomainCoach(coach))
	}
	for _, item := range equipment {
		resp.Equipment = append(resp.Equipment, models.FromDomainEquipment(item))
	}

	return resp, nil
}

// CreateCourt создает новый корт (административная операция)
func (s *Service) CreateCourt(ctx context.Context, req *models.CreateCourtRequest) (*models.CreatedCourtResponse, error) {
	s.logger.Info("CreateCourt: name=%s, type=%s, basePrice=%f", req.Name, req.Type, req.BasePrice)

	if err := validateCreateCourtRequest(req); err != nil {
		s.logger.Warn("CreateCourt: validation failed: %v", err)
		return nil, err
	}

	court := &domain.Court{
		Name:      req.Name,
		Type:      domain.CourtType(req.Type),
		BasePrice: req.BasePrice,
	}

	created, err := s.catalogRepo.CreateCourt(ctx, court)
	if err != nil {
		s.logger.Error("CreateCourt: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateCourt - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCourt: successfully created court id=%d", created.ID)
	return &models.CreatedCourtResponse{
		ID:        created.ID,
		Name:      created.Name,
		Type:      string(created.Type),
		BasePrice: created.BasePrice,
		CreatedAt: created.CreatedAt,
	}, nil
}

// validateCreateCourtRequest валидирует запрос на создание корта
func validateCreateCourtRequest(req *models.CreateCourtRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: court name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxCourtNameLength {
		return fmt.Errorf("%w: court name exceeds %d characters", ErrInvalidInput, domain.MaxCourtNameLength)
	}
	if !domain.CourtType(req.Type).IsValid() {
		return fmt.Errorf("%w: unknown court type %q", ErrInvalidInput, req.Type)
	}
	if req.BasePrice < 0 {
		return fmt.Errorf("%w: base price must not be negative", ErrInvalidInput)
	}
	return nil
}
