package pets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/internal/infra/storage/state"
	"github.com/m04kA/PetHotelService/internal/service/pets"
	"github.com/m04kA/PetHotelService/pkg/idgen"
	"github.com/m04kA/PetHotelService/pkg/logger"
	"github.com/m04kA/PetHotelService/pkg/types"
)

func newTestHandler(t *testing.T) (*Handler, *state.Repository) {
	t.Helper()
	repo := state.NewRepository()
	svc := pets.NewService(repo, repo, repo, &idgen.Sequence{}, logger.Nop())
	return NewHandler(svc, logger.Nop()), repo
}

func withPetID(req *http.Request, id string) *http.Request {
	return mux.SetURLVars(req, map[string]string{"petId": id})
}

func TestQuickAddAndGet(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.QuickAdd(rec, httptest.NewRequest(http.MethodPost, "/api/v1/pets/quick", strings.NewReader(`{"name":"Mochi"}`)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"name":"Mochi"`)

	rec = httptest.NewRecorder()
	h.Get(rec, withPetID(httptest.NewRequest(http.MethodGet, "/api/v1/pets/ghost", nil), "ghost"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteRefusesPetWithOpenBooking(t *testing.T) {
	h, repo := newTestHandler(t)
	ctx := context.Background()

	_, err := repo.CreatePet(ctx, &domain.Pet{ID: "p1", Name: "Mochi", Type: domain.PetCat})
	require.NoError(t, err)
	_, err = repo.CreateBooking(ctx, &domain.Booking{
		ID:         "b1",
		PetIDs:     []string{"p1"},
		CheckIn:    types.MustParseDate("2025-06-01"),
		CheckOut:   types.MustParseDate("2025-06-03"),
		Status:     domain.StatusConfirmed,
		RoomNumber: "2",
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.Delete(rec, withPetID(httptest.NewRequest(http.MethodDelete, "/api/v1/pets/p1", nil), "p1"))
	assert.Equal(t, http.StatusConflict, rec.Code)

	require.NoError(t, repo.UpdateBookingStatus(ctx, "b1", domain.StatusCheckedOut))

	rec = httptest.NewRecorder()
	h.Delete(rec, withPetID(httptest.NewRequest(http.MethodDelete, "/api/v1/pets/p1", nil), "p1"))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCreateValidates(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/v1/pets", strings.NewReader(`{"name":"","type":"cat"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/v1/pets", strings.NewReader(`{"name":"Tofu","type":"other"}`)))
	assert.Equal(t, http.StatusCreated, rec.Code)
}
