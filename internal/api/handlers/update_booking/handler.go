package update_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/PetHotelService/internal/api/handlers"
	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/internal/service/bookings"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgNotFound             = "бронирование не найдено"
	msgPetNotFound          = "питомец не найден"
	msgRoomNotAvailable     = "номер или парный номер занят на выбранные даты"
	msgRoomUnderMaintenance = "номер на обслуживании"
	msgTerminalState        = "у закрытого бронирования нельзя менять номер и даты"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), bookingID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrTerminalStateViolation):
			h.logger.Warn("PATCH /bookings/{id} - Terminal booking: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgTerminalState)

		case errors.Is(err, bookings.ErrRoomNotAvailable):
			h.logger.Warn("PATCH /bookings/{id} - Room not available: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgRoomNotAvailable)

		case errors.Is(err, bookings.ErrRoomUnderMaintenance):
			handlers.RespondConflict(w, msgRoomUnderMaintenance)

		case errors.Is(err, bookings.ErrPetNotFound):
			handlers.RespondNotFound(w, msgPetNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /bookings/{id} - Failed to update booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id} - Booking updated: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
