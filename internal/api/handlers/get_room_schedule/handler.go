package get_room_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/PetHotelService/internal/api/handlers"
	getRoomSchedule "github.com/m04kA/PetHotelService/internal/usecase/get_room_schedule"
)

const (
	msgInvalidParams = "укажите month=YYYY-MM или from/to в формате YYYY-MM-DD"
	msgInvalidInput  = "некорректный период или номер"
)

type Handler struct {
	useCase GetRoomScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetRoomScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/schedule
// Query params: month (YYYY-MM) или from/to (YYYY-MM-DD, to не включается), rooms (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ToUseCaseRequest(r)
	if err != nil {
		h.logger.Warn("GET /rooms/schedule - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getRoomSchedule.ErrInvalidInput):
			h.logger.Warn("GET /rooms/schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /rooms/schedule - Failed to build schedule: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
