package create_court

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCourt       = "некорректные параметры корта"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/courts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateCourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/courts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	court, err := h.service.CreateCourt(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /admin/courts - Invalid input: name=%s, error=%v", req.Name, err)
			handlers.RespondBadRequest(w, msgInvalidCourt)

		default:
			h.logger.Error("POST /admin/courts - Failed to create court: name=%s, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/courts - Court created successfully: court_id=%d, name=%s", court.ID, court.Name)
	handlers.RespondJSON(w, http.StatusCreated, court)
}
