package get_dashboard

import (
	"errors"
	"net/http"

	"github.com/m04kA/PetHotelService/internal/api/handlers"
	"github.com/m04kA/PetHotelService/internal/service/dashboard"
)

const (
	msgInvalidDate = "некорректная дата, ожидается YYYY-MM-DD"
)

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard?date=2025-06-01 (date опционально, по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	result, err := h.service.Stats(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, dashboard.ErrInvalidInput):
			h.logger.Warn("GET /dashboard - Invalid date: %s", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /dashboard - Failed to build stats: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
