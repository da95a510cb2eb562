package get_quote

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/service/pricing"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgCourtNotFound      = "корт не найден"
	msgCoachNotFound      = "тренер не найден"
	msgEquipmentNotFound  = "позиция инвентаря не найдена"
	msgInvalidQuote       = "некорректные параметры расчета"
)

type Handler struct {
	service PricingService
	logger  Logger
}

func NewHandler(service PricingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
// Предварительная оценка стоимости без бронирования; занятость не проверяется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /quotes - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	quote, err := h.service.Calculate(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrCourtNotFound):
			h.logger.Warn("POST /quotes - Court not found: court=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, pricing.ErrCoachNotFound):
			h.logger.Warn("POST /quotes - Coach not found: court=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCoachNotFound)

		case errors.Is(err, pricing.ErrEquipmentNotFound):
			h.logger.Warn("POST /quotes - Equipment not found: court=%d", req.CourtID)
			handlers.RespondNotFound(w, msgEquipmentNotFound)

		case errors.Is(err, pricing.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Invalid input: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidQuote)

		default:
			h.logger.Error("POST /quotes - Failed to calculate quote: court=%d, error=%v", req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quotes - Quote calculated successfully: court=%d, date=%s, slot=%d, total=%f",
		req.CourtID, req.Date, req.Slot, quote.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, quote)
}
