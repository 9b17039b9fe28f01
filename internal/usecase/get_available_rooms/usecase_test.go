package get_available_rooms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/internal/infra/storage/state"
	"github.com/m04kA/PetHotelService/pkg/logger"
	"github.com/m04kA/PetHotelService/pkg/types"
)

func d(s string) types.Date {
	return types.MustParseDate(s)
}

type fakeMetrics struct {
	outcomes []string
}

func (f *fakeMetrics) IncConflictCheck(outcome string) {
	f.outcomes = append(f.outcomes, outcome)
}

func TestGetAvailableRooms(t *testing.T) {
	ctx := context.Background()
	repo := state.NewRepository()
	_, err := repo.CreateBooking(ctx, &domain.Booking{
		ID: "b1", PetIDs: []string{"p1"}, CheckIn: d("2025-06-01"), CheckOut: d("2025-06-05"),
		Status: domain.StatusCheckedIn, RoomNumber: "1",
	})
	require.NoError(t, err)
	require.NoError(t, repo.SetRoomStatus(ctx, "2", domain.RoomMaintenance))

	m := &fakeMetrics{}
	uc := NewUseCase(repo, repo, m, logger.Nop())

	resp, err := uc.Execute(ctx, &Request{CheckIn: d("2025-06-03"), CheckOut: d("2025-06-04")})
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "VIP 01"}, resp.Unavailable)
	require.Len(t, resp.Rooms, domain.TotalRooms)
	assert.Equal(t, "1", resp.Rooms[0].Name)
	assert.False(t, resp.Rooms[0].Available)
	assert.Equal(t, []string{"VIP 01"}, resp.Rooms[0].Partners)

	// обслуживание видно, но номер можно выбрать
	assert.True(t, resp.Rooms[1].Maintenance)
	assert.True(t, resp.Rooms[1].Available)

	vip := resp.Rooms[10]
	assert.Equal(t, "VIP 01", vip.Name)
	assert.True(t, vip.IsVIP)
	assert.Equal(t, []string{"1", "6"}, vip.Partners)
	assert.Equal(t, []string{"partial"}, m.outcomes)
}

func TestGetAvailableRoomsExcludesEditedBooking(t *testing.T) {
	ctx := context.Background()
	repo := state.NewRepository()
	_, err := repo.CreateBooking(ctx, &domain.Booking{
		ID: "b1", PetIDs: []string{"p1"}, CheckIn: d("2025-06-01"), CheckOut: d("2025-06-05"),
		Status: domain.StatusConfirmed, RoomNumber: "VIP 03",
	})
	require.NoError(t, err)

	uc := NewUseCase(repo, repo, nil, logger.Nop())

	resp, err := uc.Execute(ctx, &Request{CheckIn: d("2025-06-02"), CheckOut: d("2025-06-03")})
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "8", "VIP 03"}, resp.Unavailable)

	resp, err = uc.Execute(ctx, &Request{CheckIn: d("2025-06-02"), CheckOut: d("2025-06-03"), ExcludeBookingID: "b1"})
	require.NoError(t, err)
	assert.Empty(t, resp.Unavailable)
}

func TestGetAvailableRoomsInvalidRange(t *testing.T) {
	uc := NewUseCase(state.NewRepository(), state.NewRepository(), nil, logger.Nop())

	_, err := uc.Execute(context.Background(), &Request{CheckIn: d("2025-06-05"), CheckOut: d("2025-06-01")})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}
