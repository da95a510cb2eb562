package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/catalog"
	pricingSvc "github.com/m04kA/SMC-CourtService/internal/service/pricing"
	pricingModels "github.com/m04kA/SMC-CourtService/internal/service/pricing/models"
)

// UseCase use case для создания бронирования
//
// Протокол атомарного выделения: проверки занятости корта и тренера,
// проверка запаса инвентаря и запись выполняются в одной сериализуемой
// транзакции — либо фиксируется всё, либо ничего.
type UseCase struct {
	reservationRepo ReservationRepository
	catalogRepo     CatalogRepository
	pricingService  PricingService
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	catalogRepo CatalogRepository,
	pricingService PricingService,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		catalogRepo:     catalogRepo,
		pricingService:  pricingService,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Проверки занятости считаются по набору бронирований слота, заблокированному
// FOR UPDATE: между чтением и записью никто не может добавить конфликтующее
// бронирование. Двойная страховка — уникальные индексы схемы и SERIALIZABLE.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%s, court=%d, date=%s, slot=%d",
		req.UserID, req.CourtID, req.Date.Format(domain.DateFormat), req.Slot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем ссылку на тренера: 0 и отрицательные значения — "без тренера"
	coachID := normalizeCoachID(req.CoachID)
	equipment := normalizeEquipment(req.Equipment)

	var (
		result *domain.Reservation
		quote  *pricingModels.PriceQuote
	)

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Все бронирования этого (дата, слот) с блокировкой FOR UPDATE
		slotReservations, err := uc.reservationRepo.GetByDateSlot(txCtx, req.Date, req.Slot)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get slot reservations: %v", err)
			return fmt.Errorf("%w: failed to get slot reservations: %v", ErrInternal, err)
		}

		// 3.2. Занятость корта
		if courtTaken(slotReservations, req.CourtID) {
			uc.logger.Warn("CreateReservation: court id=%d already booked, date=%s, slot=%d",
				req.CourtID, req.Date.Format(domain.DateFormat), req.Slot)
			return fmt.Errorf("%w: court id=%d", ErrCourtAlreadyBooked, req.CourtID)
		}

		// 3.3. Занятость тренера (только если тренер запрошен)
		if coachID != nil && coachTaken(slotReservations, *coachID) {
			uc.logger.Warn("CreateReservation: coach id=%d unavailable, date=%s, slot=%d",
				*coachID, req.Date.Format(domain.DateFormat), req.Slot)
			return fmt.Errorf("%w: coach id=%d", ErrCoachUnavailable, *coachID)
		}

		// 3.4. Запас инвентаря: уже выданное в этом слоте + запрошенное <= запас.
		// Запас — разделяемый пул на каждый (дата, слот): единицы возвращаются
		// после часа, глобальный счётчик не убывает.
		for _, eqID := range equipment.SortedIDs() {
			qty := equipment[eqID]

			item, err := uc.catalogRepo.GetEquipment(txCtx, eqID)
			if err != nil {
				if errors.Is(err, catalogRepo.ErrEquipmentNotFound) {
					uc.logger.Warn("CreateReservation: equipment id=%d not found", eqID)
					return fmt.Errorf("%w: id=%d", ErrEquipmentNotFound, eqID)
				}
				uc.logger.Error("CreateReservation: failed to get equipment id=%d: %v", eqID, err)
				return fmt.Errorf("%w: failed to get equipment: %v", ErrInternal, err)
			}

			used := equipmentUsed(slotReservations, eqID)
			if used+qty > item.Stock {
				uc.logger.Warn("CreateReservation: insufficient stock for %s: used=%d, requested=%d, stock=%d",
					item.Name, used, qty, item.Stock)
				return fmt.Errorf("%w: %s (used %d of %d, requested %d)",
					ErrInsufficientStock, item.Name, used, item.Stock, qty)
			}
		}

		// 3.5. Авторитетная цена: считается здесь же, в транзакции,
		// по тому же снимку справочника и правил
		quote, err = uc.pricingService.Calculate(txCtx, &pricingModels.CalculateRequest{
			CourtID:   req.CourtID,
			Date:      req.Date,
			Slot:      req.Slot,
			CoachID:   coachID,
			Equipment: equipment,
		})
		if err != nil {
			return uc.mapPricingError(err)
		}

		// 3.6. Сохраняем бронирование
		reservation := &domain.Reservation{
			UserID:     req.UserID,
			CourtID:    req.CourtID,
			CoachID:    coachID,
			Date:       req.Date,
			Slot:       req.Slot,
			Equipment:  equipment,
			TotalPrice: quote.TotalPrice,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d, total=%.2f",
		result.ID, result.TotalPrice)

	return &Response{
		ID:         result.ID,
		UserID:     result.UserID,
		CourtID:    result.CourtID,
		CoachID:    result.CoachID,
		Date:       result.Date,
		Slot:       result.Slot,
		Equipment:  result.Equipment,
		TotalPrice: result.TotalPrice,
		Breakdown:  quote.Breakdown,
		CreatedAt:  result.CreatedAt,
	}, nil
}

// mapPricingError переводит ошибки движка ценообразования в ошибки usecase
func (uc *UseCase) mapPricingError(err error) error {
	switch {
	case errors.Is(err, pricingSvc.ErrCourtNotFound):
		uc.logger.Warn("CreateReservation: pricing reported court not found: %v", err)
		return ErrCourtNotFound
	case errors.Is(err, pricingSvc.ErrCoachNotFound):
		uc.logger.Warn("CreateReservation: pricing reported coach not found: %v", err)
		return ErrCoachNotFound
	case errors.Is(err, pricingSvc.ErrEquipmentNotFound):
		uc.logger.Warn("CreateReservation: pricing reported equipment not found: %v", err)
		return ErrEquipmentNotFound
	case errors.Is(err, pricingSvc.ErrInvalidInput):
		uc.logger.Warn("CreateReservation: pricing rejected input: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		uc.logger.Error("CreateReservation: pricing failed: %v", err)
		return fmt.Errorf("%w: pricing failed: %v", ErrInternal, err)
	}
}
