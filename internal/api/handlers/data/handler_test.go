package data

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetHotelService/internal/service/snapshot"
	"github.com/m04kA/PetHotelService/internal/service/snapshot/models"
	"github.com/m04kA/PetHotelService/pkg/logger"
)

type stubSnapshot struct {
	imported []byte
	syncErr  error
}

func (s *stubSnapshot) Export(context.Context) ([]byte, error) {
	return []byte(`{"bookings":[]}`), nil
}

func (s *stubSnapshot) ExportBase64(context.Context) (*models.ExportBase64Response, error) {
	return &models.ExportBase64Response{Data: "e30="}, nil
}

func (s *stubSnapshot) Import(_ context.Context, raw []byte) (*models.DocumentSummary, error) {
	s.imported = raw
	return &models.DocumentSummary{Rooms: 15}, nil
}

func (s *stubSnapshot) Push(_ context.Context, syncID string) (*models.SyncResponse, error) {
	if s.syncErr != nil {
		return nil, s.syncErr
	}
	return &models.SyncResponse{SyncID: syncID, Direction: "push"}, nil
}

func (s *stubSnapshot) Pull(_ context.Context, syncID string) (*models.SyncResponse, error) {
	if s.syncErr != nil {
		return nil, s.syncErr
	}
	return &models.SyncResponse{SyncID: syncID, Direction: "pull"}, nil
}

func TestExportFormats(t *testing.T) {
	h := NewHandler(&stubSnapshot{}, logger.Nop())
	h.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }

	rec := httptest.NewRecorder()
	h.Export(rec, httptest.NewRequest(http.MethodGet, "/api/v1/data/export", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "pethotel-2025-06-01.json")
	assert.Equal(t, `{"bookings":[]}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.Export(rec, httptest.NewRequest(http.MethodGet, "/api/v1/data/export?format=base64", nil))
	assert.JSONEq(t, `{"data":"e30="}`, rec.Body.String())
}

func TestImportUnwrapsDataField(t *testing.T) {
	svc := &stubSnapshot{}
	h := NewHandler(svc, logger.Nop())

	rec := httptest.NewRecorder()
	h.Import(rec, httptest.NewRequest(http.MethodPost, "/api/v1/data/import", strings.NewReader(`{"data":"eyJyb29tcyI6W119"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "eyJyb29tcyI6W119", string(svc.imported))

	rec = httptest.NewRecorder()
	h.Import(rec, httptest.NewRequest(http.MethodPost, "/api/v1/data/import", strings.NewReader(`{"bookings":[]}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"bookings":[]}`, string(svc.imported))

	rec = httptest.NewRecorder()
	h.Import(rec, httptest.NewRequest(http.MethodPost, "/api/v1/data/import", strings.NewReader("")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSyncErrors(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{err: nil, code: http.StatusOK},
		{err: snapshot.ErrSyncDisabled, code: http.StatusNotImplemented},
		{err: snapshot.ErrSyncNotFound, code: http.StatusNotFound},
		{err: snapshot.ErrInvalidSyncID, code: http.StatusBadRequest},
		{err: snapshot.ErrInvalidDocument, code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		h := NewHandler(&stubSnapshot{syncErr: tt.err}, logger.Nop())
		req := mux.SetURLVars(httptest.NewRequest(http.MethodPost, "/api/v1/sync/home/pull", nil),
			map[string]string{"syncId": "home"})
		rec := httptest.NewRecorder()
		h.Pull(rec, req)
		assert.Equal(t, tt.code, rec.Code, "%v", tt.err)
	}
}
