package get_unavailable_rooms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/internal/infra/storage/state"
	getAvailableRooms "github.com/m04kA/PetHotelService/internal/usecase/get_available_rooms"
	"github.com/m04kA/PetHotelService/pkg/logger"
	"github.com/m04kA/PetHotelService/pkg/types"
)

func TestHandleListsLockedRooms(t *testing.T) {
	repo := state.NewRepository()
	_, err := repo.CreateBooking(context.Background(), &domain.Booking{
		ID:         "b1",
		PetIDs:     []string{"p1"},
		CheckIn:    types.MustParseDate("2025-06-01"),
		CheckOut:   types.MustParseDate("2025-06-05"),
		Status:     domain.StatusConfirmed,
		RoomNumber: "VIP 01",
	})
	require.NoError(t, err)

	h := NewHandler(getAvailableRooms.NewUseCase(repo, repo, nil, logger.Nop()), logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rooms/unavailable?checkIn=2025-06-03&checkOut=2025-06-04", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.ElementsMatch(t, []string{"VIP 01", "1", "6"}, resp.Unavailable)

	// редактируемая бронь не блокирует сама себя
	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet,
		"/api/v1/rooms/unavailable?checkIn=2025-06-03&checkOut=2025-06-04&excludeBookingId=b1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Unavailable)
}

func TestHandleRejectsBadRange(t *testing.T) {
	repo := state.NewRepository()
	h := NewHandler(getAvailableRooms.NewUseCase(repo, repo, nil, logger.Nop()), logger.Nop())

	for _, query := range []string{
		"?checkIn=2025-06-05&checkOut=2025-06-01",
		"?checkIn=2025-06-01",
		"?checkIn=june&checkOut=2025-06-02",
	} {
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rooms/unavailable"+query, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}
