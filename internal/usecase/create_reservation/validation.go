package create_reservation

import (
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !domain.IsValidSlot(req.Slot) {
		return fmt.Errorf("%w: slot %d is out of range %d..%d",
			ErrInvalidInput, req.Slot, domain.MinSlot, domain.MaxSlot)
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

// normalizeCoachID приводит сигнальные значения "без тренера" (nil, 0, отрицательные) к nil
func normalizeCoachID(coachID *int64) *int64 {
	if coachID == nil || *coachID <= 0 {
		return nil
	}
	return coachID
}

// normalizeEquipment убирает позиции с нулевым количеством
func normalizeEquipment(equipment domain.EquipmentMap) domain.EquipmentMap {
	result := make(domain.EquipmentMap, len(equipment))
	for id, qty := range equipment {
		if qty > 0 {
			result[id] = qty
		}
	}
	return result
}

// courtTaken проверяет, занят ли корт в наборе бронирований слота
func courtTaken(reservations []*domain.Reservation, courtID int64) bool {
	for _, res := range reservations {
		if res.CourtID == courtID {
			return true
		}
	}
	return false
}

// coachTaken проверяет, занят ли тренер в наборе бронирований слота
func coachTaken(reservations []*domain.Reservation, coachID int64) bool {
	for _, res := range reservations {
		if res.CoachID != nil && *res.CoachID == coachID {
			return true
		}
	}
	return false
}

// equipmentUsed суммирует уже зарезервированное количество позиции инвентаря
// по всем бронированиям слота
func equipmentUsed(reservations []*domain.Reservation, equipmentID int64) int {
	used := 0
	for _, res := range reservations {
		used += res.Equipment[equipmentID]
	}
	return used
}
