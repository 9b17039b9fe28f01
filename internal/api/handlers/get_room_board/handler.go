package get_room_board

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/PetHotelService/internal/api/handlers"
	getRoomBoard "github.com/m04kA/PetHotelService/internal/usecase/get_room_board"
	"github.com/m04kA/PetHotelService/pkg/types"
)

const (
	msgInvalidDate = "некорректная дата, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetRoomBoardUseCase
	logger  Logger
}

func NewHandler(useCase GetRoomBoardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/board
// Query params: date (опционально, по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := types.DateOf(time.Now())
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := types.ParseDate(raw)
		if err != nil {
			h.logger.Warn("GET /rooms/board - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getRoomBoard.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getRoomBoard.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /rooms/board - Failed to build board: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
