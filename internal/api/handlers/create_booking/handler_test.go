package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/internal/infra/storage/state"
	"github.com/m04kA/PetHotelService/internal/service/bookings/models"
	createBooking "github.com/m04kA/PetHotelService/internal/usecase/create_booking"
	"github.com/m04kA/PetHotelService/pkg/idgen"
	"github.com/m04kA/PetHotelService/pkg/logger"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	repo := state.NewRepository()
	_, err := repo.CreatePet(context.Background(), &domain.Pet{ID: "p1", Name: "Mochi", Type: domain.PetCat})
	require.NoError(t, err)

	uc := createBooking.NewUseCase(repo, repo, repo, repo, &idgen.Sequence{}, nil, logger.Nop(), false)
	return NewHandler(uc, logger.Nop())
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body)))
	return rec
}

func TestHandleCreatesBooking(t *testing.T) {
	h := newTestHandler(t)

	rec := post(h, `{"petIds":["p1"],"checkIn":"2025-06-01","checkOut":"2025-06-05","roomNumber":"VIP 01","totalPrice":4000}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VIP 01", resp.RoomNumber)
	assert.Equal(t, 4, resp.Nights)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestHandleRejectsPartnerConflict(t *testing.T) {
	h := newTestHandler(t)

	rec := post(h, `{"petIds":["p1"],"checkIn":"2025-06-01","checkOut":"2025-06-05","roomNumber":"VIP 01"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// 1 - парный номер VIP 01
	rec = post(h, `{"petIds":["p1"],"checkIn":"2025-06-04","checkOut":"2025-06-06","roomNumber":"1"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// выезд в день заезда не пересекается
	rec = post(h, `{"petIds":["p1"],"checkIn":"2025-06-05","checkOut":"2025-06-06","roomNumber":"1"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandleErrors(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name string
		body string
		code int
	}{
		{name: "empty body", body: "", code: http.StatusBadRequest},
		{name: "bad date", body: `{"petIds":["p1"],"checkIn":"01/06/2025","checkOut":"2025-06-05"}`, code: http.StatusBadRequest},
		{name: "bad status", body: `{"petIds":["p1"],"checkIn":"2025-06-01","checkOut":"2025-06-05","status":"lost"}`, code: http.StatusBadRequest},
		{name: "inverted range", body: `{"petIds":["p1"],"checkIn":"2025-06-05","checkOut":"2025-06-01"}`, code: http.StatusBadRequest},
		{name: "unknown pet", body: `{"petIds":["ghost"],"checkIn":"2025-06-01","checkOut":"2025-06-05"}`, code: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, post(h, tt.body).Code)
		})
	}
}
