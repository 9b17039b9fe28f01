package get_unavailable_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/PetHotelService/internal/api/handlers"
	getAvailableRooms "github.com/m04kA/PetHotelService/internal/usecase/get_available_rooms"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange = "дата заезда должна быть раньше даты выезда"
)

type Handler struct {
	useCase GetAvailableRoomsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/unavailable
// Query params: checkIn, checkOut (обязательные), excludeBookingId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ToUseCaseRequest(r)
	if err != nil {
		h.logger.Warn("GET /rooms/unavailable - Invalid dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableRooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms/unavailable - Invalid range: %s..%s", req.CheckIn, req.CheckOut)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /rooms/unavailable - Failed to resolve conflicts: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
