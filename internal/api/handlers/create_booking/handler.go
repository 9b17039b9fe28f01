package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/PetHotelService/internal/api/handlers"
	createBooking "github.com/m04kA/PetHotelService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidFields        = "некорректные даты (YYYY-MM-DD) или статус бронирования"
	msgInvalidInput         = "некорректные данные бронирования"
	msgPetNotFound          = "питомец не найден"
	msgRoomNotAvailable     = "номер или парный номер занят на выбранные даты"
	msgRoomUnderMaintenance = "номер на обслуживании"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrRoomNotAvailable):
			h.logger.Warn("POST /bookings - Room not available: room=%q, period=%s..%s", req.RoomNumber, req.CheckIn, req.CheckOut)
			handlers.RespondConflict(w, msgRoomNotAvailable)

		case errors.Is(err, createBooking.ErrRoomUnderMaintenance):
			h.logger.Warn("POST /bookings - Room under maintenance: room=%q", req.RoomNumber)
			handlers.RespondConflict(w, msgRoomUnderMaintenance)

		case errors.Is(err, createBooking.ErrPetNotFound):
			h.logger.Warn("POST /bookings - Pet not found: pets=%v", req.PetIDs)
			handlers.RespondNotFound(w, msgPetNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, room=%s",
		result.Booking.ID, result.Booking.RoomNumber)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
