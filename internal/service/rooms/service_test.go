package rooms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/internal/infra/storage/state"
	"github.com/m04kA/PetHotelService/pkg/logger"
)

func TestListRooms(t *testing.T) {
	svc := NewService(state.NewRepository(), logger.Nop())

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Rooms, domain.TotalRooms)

	assert.Equal(t, "1", resp.Rooms[0].Name)
	assert.Equal(t, []string{"VIP 01"}, resp.Rooms[0].Partners)

	vip := resp.Rooms[14]
	assert.Equal(t, "VIP 05", vip.Name)
	assert.True(t, vip.IsVIP)
	assert.Equal(t, []string{"5", "10"}, vip.Partners)
}

func TestSetMaintenance(t *testing.T) {
	repo := state.NewRepository()
	svc := NewService(repo, logger.Nop())
	ctx := context.Background()

	resp, err := svc.SetMaintenance(ctx, "VIP 02", true)
	require.NoError(t, err)
	assert.Equal(t, "maintenance", resp.Status)

	resp, err = svc.SetMaintenance(ctx, "VIP 02", false)
	require.NoError(t, err)
	assert.Equal(t, "vacant", resp.Status)

	_, err = svc.SetMaintenance(ctx, "11", true)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
