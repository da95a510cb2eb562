package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-CourtService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgCourtNotFound      = "корт не найден"
	msgCoachNotFound      = "тренер не найден"
	msgEquipmentNotFound  = "позиция инвентаря не найдена"
	msgCourtAlreadyBooked = "корт уже забронирован на этот слот"
	msgCoachUnavailable   = "тренер занят на этот слот"
	msgInsufficientStock  = "недостаточно инвентаря на этот слот"
	msgInvalidReservation = "некорректные параметры бронирования"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrCourtAlreadyBooked):
			h.logger.Warn("POST /reservations - Court already booked: user=%s, court=%d, date=%s, slot=%d",
				userID, req.CourtID, req.Date, req.Slot)
			handlers.RespondConflict(w, msgCourtAlreadyBooked)

		case errors.Is(err, createReservation.ErrCoachUnavailable):
			h.logger.Warn("POST /reservations - Coach unavailable: user=%s, date=%s, slot=%d",
				userID, req.Date, req.Slot)
			handlers.RespondConflict(w, msgCoachUnavailable)

		case errors.Is(err, createReservation.ErrInsufficientStock):
			h.logger.Warn("POST /reservations - Insufficient equipment stock: user=%s, date=%s, slot=%d",
				userID, req.Date, req.Slot)
			handlers.RespondConflict(w, msgInsufficientStock)

		case errors.Is(err, createReservation.ErrCourtNotFound):
			h.logger.Warn("POST /reservations - Court not found: court=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createReservation.ErrCoachNotFound):
			h.logger.Warn("POST /reservations - Coach not found: user=%s", userID)
			handlers.RespondNotFound(w, msgCoachNotFound)

		case errors.Is(err, createReservation.ErrEquipmentNotFound):
			h.logger.Warn("POST /reservations - Equipment not found: user=%s", userID)
			handlers.RespondNotFound(w, msgEquipmentNotFound)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidReservation)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user=%s, court=%d, error=%v",
				userID, req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, user=%s, court=%d",
		result.ID, userID, req.CourtID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
