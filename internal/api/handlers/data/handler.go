package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/PetHotelService/internal/api/handlers"
	"github.com/m04kA/PetHotelService/internal/service/snapshot"
	"github.com/m04kA/PetHotelService/internal/service/snapshot/models"
)

const (
	msgEmptyBody       = "пустое тело запроса"
	msgInvalidDocument = "некорректный документ данных"
	msgSyncDisabled    = "удаленная синхронизация не настроена"
	msgSyncNotFound    = "по этому коду синхронизации данных нет"
	msgInvalidSyncID   = "некорректный код синхронизации"
)

const contentTypeJSON = "application/json"

// Handler экспорт/импорт документа и синхронизация
type Handler struct {
	service SnapshotService
	logger  Logger
	now     func() time.Time
}

func NewHandler(service SnapshotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		now:     time.Now,
	}
}

// Export GET /api/v1/data/export?format=base64
// Без format отдает JSON файл для скачивания
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("format") == "base64" {
		result, err := h.service.ExportBase64(r.Context())
		if err != nil {
			h.logger.Error("GET /data/export - Failed to export: %v", err)
			handlers.RespondInternalError(w)
			return
		}
		handlers.RespondJSON(w, http.StatusOK, result)
		return
	}

	data, err := h.service.Export(r.Context())
	if err != nil {
		h.logger.Error("GET /data/export - Failed to export: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	name := fmt.Sprintf("pethotel-%s.json", h.now().Format("2006-01-02"))
	handlers.RespondFile(w, name, contentTypeJSON, data)
}

// Import POST /api/v1/data/import
// Тело - документ JSON, его base64 или {"data": "..."}
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	body, err := handlers.ReadBody(r)
	if err != nil || len(body) == 0 {
		h.logger.Warn("POST /data/import - Empty or unreadable body: %v", err)
		handlers.RespondBadRequest(w, msgEmptyBody)
		return
	}

	var wrapped models.ImportRequest
	if json.Unmarshal(body, &wrapped) == nil && wrapped.Data != "" {
		body = []byte(wrapped.Data)
	}

	result, err := h.service.Import(r.Context(), body)
	if err != nil {
		h.respondError(w, "POST /data/import", err)
		return
	}

	h.logger.Info("POST /data/import - State imported: bookings=%d, pets=%d", result.Bookings, result.Pets)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Push POST /api/v1/sync/{syncId}/push
func (h *Handler) Push(w http.ResponseWriter, r *http.Request) {
	syncID := mux.Vars(r)["syncId"]

	result, err := h.service.Push(r.Context(), syncID)
	if err != nil {
		h.respondError(w, "POST /sync/{id}/push", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Pull POST /api/v1/sync/{syncId}/pull
func (h *Handler) Pull(w http.ResponseWriter, r *http.Request) {
	syncID := mux.Vars(r)["syncId"]

	result, err := h.service.Pull(r.Context(), syncID)
	if err != nil {
		h.respondError(w, "POST /sync/{id}/pull", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, snapshot.ErrInvalidDocument):
		h.logger.Warn("%s - Invalid document: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidDocument)

	case errors.Is(err, snapshot.ErrInvalidSyncID):
		handlers.RespondBadRequest(w, msgInvalidSyncID)

	case errors.Is(err, snapshot.ErrSyncNotFound):
		handlers.RespondNotFound(w, msgSyncNotFound)

	case errors.Is(err, snapshot.ErrSyncDisabled):
		handlers.RespondError(w, http.StatusNotImplemented, msgSyncDisabled)

	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
