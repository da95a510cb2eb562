package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/catalog"
	ruleRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/pricingrule"
	"github.com/m04kA/SMC-CourtService/internal/service/pricing/models"
)

// Service движок расчета стоимости бронирования
//
// Calculate — чистая функция от входных параметров и текущего снимка
// справочника и правил: никаких мутаций, вызывается и внутри транзакции
// бронирования (авторитетная цена), и для предварительной оценки клиентом.
type Service struct {
	catalogRepo CatalogRepository
	ruleRepo    RuleRepository
	logger      Logger
}

// NewService создает новый экземпляр движка ценообразования
func NewService(catalogRepo CatalogRepository, ruleRepo RuleRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		ruleRepo:    ruleRepo,
		logger:      logger,
	}
}

// Calculate рассчитывает итоговую стоимость бронирования с расшифровкой
//
// Алгоритм:
//  1. courtCost = базовая цена корта
//  2. каждое применимое правило корректирует courtCost кумулятивно
//     в порядке создания правил (multiplier умножает, fixed_add прибавляет)
//  3. ставка тренера добавляется как есть (правила на неё не действуют)
//  4. инвентарь: цена единицы * количество, позиции в порядке возрастания id
//     (фиксированный порядок сложения — расчет воспроизводим бит-в-бит)
func (s *Service) Calculate(ctx context.Context, req *models.CalculateRequest) (*models.PriceQuote, error) {
	if err := validateCalculateRequest(req); err != nil {
		s.logger.Warn("Calculate: validation failed: %v", err)
		return nil, err
	}

	court, err := s.catalogRepo.GetCourt(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrCourtNotFound) {
			s.logger.Warn("Calculate: court id=%d not found", req.CourtID)
			return nil, fmt.Errorf("%w: id=%d", ErrCourtNotFound, req.CourtID)
		}
		s.logger.Error("Calculate: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	courtCost := court.BasePrice
	breakdown := models.Breakdown{
		Base:  courtCost,
		Rules: make([]models.AppliedRule, 0),
	}

	// 0=воскресенье .. 6=суббота
	dayOfWeek := int(req.Date.Weekday())

	rules, err := s.ruleRepo.List(ctx)
	if err != nil {
		s.logger.Error("Calculate: failed to list pricing rules: %v", err)
		return nil, fmt.Errorf("%w: failed to list pricing rules: %v", ErrInternal, err)
	}

	for _, rule := range rules {
		if !rule.Condition.Matches(dayOfWeek, req.Slot, court.Type) {
			continue
		}

		var effect string
		courtCost, effect = rule.Apply(courtCost)
		breakdown.Rules = append(breakdown.Rules, models.AppliedRule{
			Name:   rule.Name,
			Effect: effect,
			Value:  rule.Value,
		})
	}

	totalPrice := courtCost
	breakdown.CourtFinal = courtCost

	if req.CoachID != nil {
		coach, err := s.catalogRepo.GetCoach(ctx, *req.CoachID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrCoachNotFound) {
				s.logger.Warn("Calculate: coach id=%d not found", *req.CoachID)
				return nil, fmt.Errorf("%w: id=%d", ErrCoachNotFound, *req.CoachID)
			}
			s.logger.Error("Calculate: failed to get coach id=%d: %v", *req.CoachID, err)
			return nil, fmt.Errorf("%w: failed to get coach: %v", ErrInternal, err)
		}

		totalPrice += coach.HourlyRate
		breakdown.Coach = coach.HourlyRate
	}

	if len(req.Equipment) > 0 {
		equipTotal := 0.0

		for _, eqID := range req.Equipment.SortedIDs() {
			qty := req.Equipment[eqID]
			if qty <= 0 {
				continue
			}

			item, err := s.catalogRepo.GetEquipment(ctx, eqID)
			if err != nil {
				if errors.Is(err, catalogRepo.ErrEquipmentNotFound) {
					s.logger.Warn("Calculate: equipment id=%d not found", eqID)
					return nil, fmt.Errorf("%w: id=%d", ErrEquipmentNotFound, eqID)
				}
				s.logger.Error("Calculate: failed to get equipment id=%d: %v", eqID, err)
				return nil, fmt.Errorf("%w: failed to get equipment: %v", ErrInternal, err)
			}

			equipTotal += item.Price * float64(qty)
		}

		totalPrice += equipTotal
		breakdown.Equipment = equipTotal
	}

	return &models.PriceQuote{
		TotalPrice: totalPrice,
		Breakdown:  breakdown,
	}, nil
}

// ListRules возвращает все правила в порядке применения
func (s *Service) ListRules(ctx context.Context) ([]*models.RuleResponse, error) {
	rules, err := s.ruleRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListRules: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRules - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainRuleList(rules), nil
}

// CreateRule создает новое правило ценообразования (административная операция)
func (s *Service) CreateRule(ctx context.Context, req *models.CreateRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("CreateRule: name=%s, type=%s, value=%f", req.Name, req.Type, req.Value)

	if err := validateCreateRuleRequest(req); err != nil {
		s.logger.Warn("CreateRule: validation failed: %v", err)
		return nil, err
	}

	rule := &domain.PricingRule{
		Name:      req.Name,
		Type:      domain.RuleType(req.Type),
		Value:     req.Value,
		Condition: req.Condition,
	}

	created, err := s.ruleRepo.Create(ctx, rule)
	if err != nil {
		s.logger.Error("CreateRule: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateRule: successfully created rule id=%d", created.ID)
	return models.FromDomainRule(created), nil
}

// DeleteRule удаляет правило ценообразования (административная операция)
func (s *Service) DeleteRule(ctx context.Context, id int64) error {
	s.logger.Info("DeleteRule: id=%d", id)

	if err := s.ruleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("DeleteRule: rule id=%d not found", id)
			return ErrRuleNotFound
		}
		s.logger.Error("DeleteRule: repository error for rule id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteRule: successfully deleted rule id=%d", id)
	return nil
}

// validateCalculateRequest валидирует запрос на расчет стоимости
func validateCalculateRequest(req *models.CalculateRequest) error {
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if !domain.IsValidSlot(req.Slot) {
		return fmt.Errorf("%w: slot %d is out of range %d..%d", ErrInvalidInput, req.Slot, domain.MinSlot, domain.MaxSlot)
	}
	if req.CoachID != nil && *req.CoachID <= 0 {
		return fmt.Errorf("%w: coachID must be positive", ErrInvalidInput)
	}
	for eqID, qty := range req.Equipment {
		if eqID <= 0 {
			return fmt.Errorf("%w: equipment id must be positive", ErrInvalidInput)
		}
		if qty < 0 {
			return fmt.Errorf("%w: equipment quantity must not be negative", ErrInvalidInput)
		}
		if qty > domain.MaxEquipmentQty {
			return fmt.Errorf("%w: equipment quantity exceeds limit %d", ErrInvalidInput, domain.MaxEquipmentQty)
		}
	}
	return nil
}

// validateCreateRuleRequest валидирует запрос на создание правила
func validateCreateRuleRequest(req *models.CreateRuleRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: rule name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxRuleNameLength {
		return fmt.Errorf("%w: rule name exceeds %d characters", ErrInvalidInput, domain.MaxRuleNameLength)
	}
	if !domain.RuleType(req.Type).IsValid() {
		return fmt.Errorf("%w: unknown rule type %q", ErrInvalidInput, req.Type)
	}
	if domain.RuleType(req.Type) == domain.RuleTypeMultiplier && req.Value <= 0 {
		return fmt.Errorf("%w: multiplier value must be positive", ErrInvalidInput)
	}
	if err := req.Condition.Validate(); err != nil {
		return fmt.Errorf("%w: invalid rule condition: %v", ErrInvalidInput, err)
	}
	return nil
}
