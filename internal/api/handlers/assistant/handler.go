package assistant

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/PetHotelService/internal/api/handlers"
	"github.com/m04kA/PetHotelService/internal/service/assistant"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgPetNotFound        = "питомец не найден"
	msgPreCheckNotFound   = "осмотр не найден"
	msgGenerationFailed   = "не удалось сгенерировать текст"
)

// Handler обработчики генерации текстов
type Handler struct {
	service AssistantService
	logger  Logger
}

func NewHandler(service AssistantService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// CareTips POST /api/v1/assistant/tips/{petId}
func (h *Handler) CareTips(w http.ResponseWriter, r *http.Request) {
	text, err := h.service.CareTips(r.Context(), mux.Vars(r)["petId"])
	h.respondText(w, "POST /assistant/tips/{petId}", text, err)
}

// Welcome POST /api/v1/assistant/welcome/{petId}
func (h *Handler) Welcome(w http.ResponseWriter, r *http.Request) {
	text, err := h.service.Welcome(r.Context(), mux.Vars(r)["petId"])
	h.respondText(w, "POST /assistant/welcome/{petId}", text, err)
}

// PreCheckSummary POST /api/v1/bookings/{bookingId}/prechecks/{petId}/summary
func (h *Handler) PreCheckSummary(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	text, err := h.service.PreCheckSummary(r.Context(), vars["bookingId"], vars["petId"])
	h.respondText(w, "POST /bookings/{id}/prechecks/{petId}/summary", text, err)
}

// CareNote POST /api/v1/care-logs/{petId}/{date}/note
func (h *Handler) CareNote(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	text, err := h.service.CareNote(r.Context(), vars["petId"], vars["date"])
	h.respondText(w, "POST /care-logs/{petId}/{date}/note", text, err)
}

// SearchPets POST /api/v1/pets/ai-search
func (h *Handler) SearchPets(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pets/ai-search - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ids, err := h.service.SearchPets(r.Context(), req.Query)
	if err != nil {
		h.respondError(w, "POST /pets/ai-search", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, SearchResponse{PetIDs: ids})
}

func (h *Handler) respondText(w http.ResponseWriter, route, text string, err error) {
	if err != nil {
		h.respondError(w, route, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, TextResponse{Text: text})
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, assistant.ErrPetNotFound):
		handlers.RespondNotFound(w, msgPetNotFound)

	case errors.Is(err, assistant.ErrPreCheckNotFound):
		handlers.RespondNotFound(w, msgPreCheckNotFound)

	case errors.Is(err, assistant.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())

	case errors.Is(err, assistant.ErrGenerationFailed):
		h.logger.Warn("%s - Generation failed: %v", route, err)
		handlers.RespondError(w, http.StatusBadGateway, msgGenerationFailed)

	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
