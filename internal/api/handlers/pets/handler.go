package pets

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/PetHotelService/internal/api/handlers"
	"github.com/m04kA/PetHotelService/internal/service/pets"
	"github.com/m04kA/PetHotelService/internal/service/pets/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "питомец не найден"
	msgPetInUse           = "у питомца есть незакрытые бронирования"
)

// Handler обработчики карточек питомцев
type Handler struct {
	service PetService
	logger  Logger
}

func NewHandler(service PetService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/pets?q=mochi
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.logger.Error("GET /pets - Failed to list pets: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/pets
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.PetRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pets - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /pets", "", err)
		return
	}

	h.logger.Info("POST /pets - Pet created: pet_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// QuickAdd POST /api/v1/pets/quick
func (h *Handler) QuickAdd(w http.ResponseWriter, r *http.Request) {
	var req models.QuickAddRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pets/quick - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.QuickAdd(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /pets/quick", "", err)
		return
	}

	h.logger.Info("POST /pets/quick - Pet created: pet_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Get GET /api/v1/pets/{petId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	petID := mux.Vars(r)["petId"]

	result, err := h.service.GetByID(r.Context(), petID)
	if err != nil {
		h.respondError(w, "GET /pets/{id}", petID, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PUT /api/v1/pets/{petId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	petID := mux.Vars(r)["petId"]

	var req models.PetRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /pets/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), petID, &req)
	if err != nil {
		h.respondError(w, "PUT /pets/{id}", petID, err)
		return
	}

	h.logger.Info("PUT /pets/{id} - Pet updated: pet_id=%s", petID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/pets/{petId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	petID := mux.Vars(r)["petId"]

	if err := h.service.Delete(r.Context(), petID); err != nil {
		h.respondError(w, "DELETE /pets/{id}", petID, err)
		return
	}

	h.logger.Info("DELETE /pets/{id} - Pet deleted: pet_id=%s", petID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) respondError(w http.ResponseWriter, route, petID string, err error) {
	switch {
	case errors.Is(err, pets.ErrPetNotFound):
		h.logger.Warn("%s - Pet not found: pet_id=%s", route, petID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, pets.ErrPetInUse):
		h.logger.Warn("%s - Pet in use: pet_id=%s", route, petID)
		handlers.RespondConflict(w, msgPetInUse)

	case errors.Is(err, pets.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Internal error: pet_id=%s, error=%v", route, petID, err)
		handlers.RespondInternalError(w)
	}
}
