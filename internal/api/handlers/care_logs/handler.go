package care_logs

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/PetHotelService/internal/api/handlers"
	"github.com/m04kA/PetHotelService/internal/service/carelogs"
	"github.com/m04kA/PetHotelService/internal/service/carelogs/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgPetNotFound        = "питомец не найден"
)

// Handler обработчики дневника ухода
type Handler struct {
	service CareLogService
	logger  Logger
}

func NewHandler(service CareLogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/care-logs?date=2025-06-02 или ?petId=...
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		result []*models.CareLogResponse
		err    error
	)
	if petID := q.Get("petId"); petID != "" {
		result, err = h.service.ListByPet(r.Context(), petID)
	} else {
		result, err = h.service.ListByDate(r.Context(), q.Get("date"))
	}
	if err != nil {
		h.respondError(w, "GET /care-logs", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Upsert PUT /api/v1/care-logs/{petId}/{date}
func (h *Handler) Upsert(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	petID, date := vars["petId"], vars["date"]

	var req models.UpsertCareLogRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /care-logs/{petId}/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Upsert(r.Context(), petID, date, &req)
	if err != nil {
		h.respondError(w, "PUT /care-logs/{petId}/{date}", err)
		return
	}

	h.logger.Info("PUT /care-logs/{petId}/{date} - Care log saved: pet_id=%s, date=%s", petID, date)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// InHouse GET /api/v1/care-logs/in-house?date=2025-06-02
func (h *Handler) InHouse(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.InHouse(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		h.respondError(w, "GET /care-logs/in-house", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, carelogs.ErrPetNotFound):
		handlers.RespondNotFound(w, msgPetNotFound)

	case errors.Is(err, carelogs.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
