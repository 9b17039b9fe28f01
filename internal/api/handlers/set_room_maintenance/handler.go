package set_room_maintenance

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/PetHotelService/internal/api/handlers"
	"github.com/m04kA/PetHotelService/internal/service/rooms"
	"github.com/m04kA/PetHotelService/internal/service/rooms/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgRoomNotFound       = "номер не найден"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/rooms/{name}/maintenance
// Body: {"maintenance": true} - на обслуживание, false - готов к заселению
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var req models.SetMaintenanceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /rooms/{name}/maintenance - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetMaintenance(r.Context(), name, req.Maintenance)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("PUT /rooms/{name}/maintenance - Room not found: room=%q", name)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("PUT /rooms/{name}/maintenance - Failed to update room: room=%q, error=%v", name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /rooms/{name}/maintenance - Room updated: room=%q, maintenance=%t", name, req.Maintenance)
	handlers.RespondJSON(w, http.StatusOK, result)
}
