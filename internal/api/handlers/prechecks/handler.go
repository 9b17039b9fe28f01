package prechecks

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/PetHotelService/internal/api/handlers"
	"github.com/m04kA/PetHotelService/internal/service/prechecks"
	"github.com/m04kA/PetHotelService/internal/service/prechecks/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgPetNotInBooking    = "питомец не входит в бронирование"
	msgNotFound           = "осмотр не найден"
	msgBookingClosed      = "бронирование закрыто"
)

// Handler обработчики осмотров при заезде
type Handler struct {
	service PreCheckService
	logger  Logger
}

func NewHandler(service PreCheckService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Save PUT /api/v1/bookings/{bookingId}/prechecks/{petId}
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, petID := vars["bookingId"], vars["petId"]

	var req models.SavePreCheckRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id}/prechecks/{petId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Save(r.Context(), bookingID, petID, &req)
	if err != nil {
		h.respondError(w, "PUT /bookings/{id}/prechecks/{petId}", bookingID, err)
		return
	}

	h.logger.Info("PUT /bookings/{id}/prechecks/{petId} - Pre-check saved: booking_id=%s, pet_id=%s, booking_status=%s",
		bookingID, petID, result.BookingStatus)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/bookings/{bookingId}/prechecks/{petId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, petID := vars["bookingId"], vars["petId"]

	result, err := h.service.Get(r.Context(), bookingID, petID)
	if err != nil {
		h.respondError(w, "GET /bookings/{id}/prechecks/{petId}", bookingID, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// List GET /api/v1/bookings/{bookingId}/prechecks
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	result, err := h.service.List(r.Context(), bookingID)
	if err != nil {
		h.respondError(w, "GET /bookings/{id}/prechecks", bookingID, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, route, bookingID string, err error) {
	switch {
	case errors.Is(err, prechecks.ErrBookingNotFound):
		h.logger.Warn("%s - Booking not found: booking_id=%s", route, bookingID)
		handlers.RespondNotFound(w, msgBookingNotFound)

	case errors.Is(err, prechecks.ErrPetNotInBooking):
		handlers.RespondBadRequest(w, msgPetNotInBooking)

	case errors.Is(err, prechecks.ErrPreCheckNotFound):
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, prechecks.ErrBookingClosed):
		h.logger.Warn("%s - Booking closed: booking_id=%s", route, bookingID)
		handlers.RespondConflict(w, msgBookingClosed)

	case errors.Is(err, prechecks.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Internal error: booking_id=%s, error=%v", route, bookingID, err)
		handlers.RespondInternalError(w)
	}
}
