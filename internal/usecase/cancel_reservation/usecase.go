package cancel_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-CourtService/internal/integrations/notifier"
)

// Таймаут публикации уведомления после коммита отмены
const notifyTimeout = 5 * time.Second

// UseCase use case отмены бронирования с каскадом по листу ожидания
//
// Удаление бронирования и чтение самой ранней записи листа ожидания идут
// в одной транзакции; уведомление публикуется ПОСЛЕ коммита и его сбой
// не откатывает отмену. Бронирование за ожидающего не создается — он
// бронирует заново сам и наравне со всеми проходит проверки занятости.
type UseCase struct {
	reservationRepo ReservationRepository
	waitlistRepo    WaitlistRepository
	notifier        Notifier
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	waitlistRepo WaitlistRepository,
	notify Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		waitlistRepo:    waitlistRepo,
		notifier:        notify,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case отмены бронирования
func (uc *UseCase) Execute(ctx context.Context, reservationID int64, userID string) error {
	uc.logger.Info("CancelReservation: id=%d, user=%s", reservationID, userID)

	if reservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}
	if userID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	// Самая ранняя запись листа ожидания на освободившийся слот (может не быть)
	var nextInLine *domain.WaitlistEntry
	var freed *domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование с блокировкой строки
		res, err := uc.reservationRepo.GetByID(txCtx, reservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("CancelReservation: reservation id=%d not found", reservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("CancelReservation: failed to get reservation id=%d: %v", reservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 2. Отменить можно только собственное бронирование
		if res.UserID != userID {
			uc.logger.Warn("CancelReservation: access denied for user=%s to reservation id=%d", userID, reservationID)
			return ErrAccessDenied
		}

		// 3. Удаляем бронирование
		if err := uc.reservationRepo.Delete(txCtx, reservationID); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			uc.logger.Error("CancelReservation: failed to delete reservation id=%d: %v", reservationID, err)
			return fmt.Errorf("%w: failed to delete reservation: %v", ErrInternal, err)
		}

		// 4. Самая ранняя запись листа ожидания на (корт, дата, слот)
		entries, err := uc.waitlistRepo.GetByCourtDateSlot(txCtx, res.CourtID, res.Date, res.Slot)
		if err != nil {
			uc.logger.Error("CancelReservation: failed to get waitlist entries: %v", err)
			return fmt.Errorf("%w: failed to get waitlist entries: %v", ErrInternal, err)
		}
		if len(entries) > 0 {
			nextInLine = entries[0]
		}

		freed = res
		return nil
	})

	if err != nil {
		return err
	}

	uc.logger.Info("CancelReservation: successfully cancelled reservation id=%d", reservationID)

	// 5. Уведомление — fire-and-forget после коммита: его сбой уже не может
	// повлиять на результат отмены
	if nextInLine != nil {
		go uc.notifyNextInLine(nextInLine, freed)
	}

	return nil
}

// notifyNextInLine публикует событие освобождения слота для самой ранней
// записи листа ожидания; ошибки только логируются
func (uc *UseCase) notifyNextInLine(entry *domain.WaitlistEntry, freed *domain.Reservation) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	event := notifier.SlotFreedEvent{
		UserID:  entry.UserID,
		CourtID: freed.CourtID,
		Date:    freed.Date.Format(domain.DateFormat),
		Slot:    freed.Slot,
	}

	if err := uc.notifier.NotifySlotFreed(ctx, event); err != nil {
		uc.logger.Error("CancelReservation: failed to notify waitlist user=%s, court=%d, slot=%d: %v",
			entry.UserID, freed.CourtID, freed.Slot, err)
		return
	}

	uc.logger.Info("CancelReservation: notified waitlist user=%s about court=%d, date=%s, slot=%d",
		entry.UserID, freed.CourtID, freed.Date.Format(domain.DateFormat), freed.Slot)
}
