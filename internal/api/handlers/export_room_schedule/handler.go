package export_room_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/PetHotelService/internal/api/handlers"
	"github.com/m04kA/PetHotelService/internal/service/export"
	"github.com/m04kA/PetHotelService/pkg/types"
)

const (
	msgInvalidMonth = "некорректный месяц, ожидается YYYY-MM"
)

type Handler struct {
	service ExportService
	logger  Logger
}

func NewHandler(service ExportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/schedule/export
// Query params: month (опционально, по умолчанию текущий)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = types.DateOf(time.Now()).Month()
	}

	file, err := h.service.MonthlyBoard(r.Context(), month)
	if err != nil {
		switch {
		case errors.Is(err, export.ErrInvalidInput):
			h.logger.Warn("GET /rooms/schedule/export - Invalid month: %q", month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /rooms/schedule/export - Failed to export: month=%s, error=%v", month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/schedule/export - Exported %s (%d bytes)", file.Name, len(file.Data))
	handlers.RespondFile(w, file.Name, export.ContentTypeXLSX, file.Data)
}
