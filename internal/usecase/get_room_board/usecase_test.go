package get_room_board

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/internal/infra/storage/state"
	"github.com/m04kA/PetHotelService/internal/service/availability"
	"github.com/m04kA/PetHotelService/pkg/logger"
	"github.com/m04kA/PetHotelService/pkg/types"
)

func d(s string) types.Date {
	return types.MustParseDate(s)
}

type gauge struct{ value int }

func (g *gauge) SetRoomsOccupied(n int) { g.value = n }

func TestGetRoomBoard(t *testing.T) {
	ctx := context.Background()
	repo := state.NewRepository()
	_, err := repo.CreatePet(ctx, &domain.Pet{ID: "p1", Name: "Mochi"})
	require.NoError(t, err)
	_, err = repo.CreateBooking(ctx, &domain.Booking{
		ID: "b1", PetIDs: []string{"p1"}, CheckIn: d("2025-06-01"), CheckOut: d("2025-06-05"),
		Status: domain.StatusConfirmed, RoomNumber: "VIP 02",
	})
	require.NoError(t, err)
	require.NoError(t, repo.SetRoomStatus(ctx, "5", domain.RoomMaintenance))

	g := &gauge{}
	uc := NewUseCase(repo, repo, repo, g, logger.Nop())

	resp, err := uc.Execute(ctx, &Request{Date: d("2025-06-04")})
	require.NoError(t, err)
	require.Len(t, resp.Rooms, domain.TotalRooms)

	kinds := map[string]availability.Kind{}
	for _, r := range resp.Rooms {
		kinds[r.Room.Name] = r.Kind
		if r.Room.Name == "VIP 02" {
			require.Len(t, r.Pets, 1)
			assert.Equal(t, "Mochi", r.Pets[0].Name)
		}
		if r.Room.Name == "7" {
			assert.Equal(t, "VIP 02", r.LockedBy)
			assert.Equal(t, "b1", r.Booking.ID)
		}
	}

	assert.Equal(t, availability.KindOccupied, kinds["VIP 02"])
	assert.Equal(t, availability.KindLocked, kinds["2"])
	assert.Equal(t, availability.KindLocked, kinds["7"])
	assert.Equal(t, availability.KindMaintenance, kinds["5"])
	assert.Equal(t, availability.KindVacant, kinds["1"])
	assert.Equal(t, 1, resp.Occupied)
	assert.Equal(t, 2, resp.Locked)
	assert.Equal(t, 11, resp.Vacant)
	assert.Equal(t, 1, g.value)

	// день выезда
	resp, err = uc.Execute(ctx, &Request{Date: d("2025-06-05")})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Occupied)
}

func TestGetRoomBoardRequiresDate(t *testing.T) {
	uc := NewUseCase(state.NewRepository(), state.NewRepository(), state.NewRepository(), nil, logger.Nop())
	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}
