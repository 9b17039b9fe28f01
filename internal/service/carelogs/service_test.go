package carelogs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/internal/infra/storage/state"
	"github.com/m04kA/PetHotelService/internal/service/carelogs/models"
	"github.com/m04kA/PetHotelService/pkg/idgen"
	"github.com/m04kA/PetHotelService/pkg/logger"
	"github.com/m04kA/PetHotelService/pkg/types"
)

func setup(t *testing.T) (*Service, *state.Repository) {
	t.Helper()
	repo := state.NewRepository()
	ctx := context.Background()
	for _, p := range []*domain.Pet{{ID: "p1", Name: "Mochi"}, {ID: "p2", Name: "Tofu"}, {ID: "p3", Name: "Nori"}} {
		_, err := repo.CreatePet(ctx, p)
		require.NoError(t, err)
	}
	for _, b := range []*domain.Booking{
		{ID: "b1", PetIDs: []string{"p1", "p2"}, CheckIn: types.MustParseDate("2025-06-01"), CheckOut: types.MustParseDate("2025-06-05"), Status: domain.StatusCheckedIn, RoomNumber: "VIP 01"},
		{ID: "b2", PetIDs: []string{"p3"}, CheckIn: types.MustParseDate("2025-06-01"), CheckOut: types.MustParseDate("2025-06-05"), Status: domain.StatusConfirmed, RoomNumber: "3"},
	} {
		_, err := repo.CreateBooking(ctx, b)
		require.NoError(t, err)
	}
	return NewService(repo, repo, repo, &idgen.Sequence{}, logger.Nop()), repo
}

func TestUpsertKeepsOneLogPerDay(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	first, err := svc.Upsert(ctx, "p1", "2025-06-02", &models.UpsertCareLogRequest{FeedingStatus: "finished"})
	require.NoError(t, err)

	second, err := svc.Upsert(ctx, "p1", "2025-06-02", &models.UpsertCareLogRequest{FeedingStatus: "leftovers", Notes: "napped"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	logs, err := svc.ListByDate(ctx, "2025-06-02")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "leftovers", logs[0].FeedingStatus)

	_, err = svc.Upsert(ctx, "p1", "2025-06-03", &models.UpsertCareLogRequest{})
	require.NoError(t, err)
	history, err := svc.ListByPet(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestUpsertValidation(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, "p1", "2025/06/02", &models.UpsertCareLogRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Upsert(ctx, "p1", "2025-06-02", &models.UpsertCareLogRequest{LitterStatus: "rainbow"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Upsert(ctx, "ghost", "2025-06-02", &models.UpsertCareLogRequest{})
	assert.ErrorIs(t, err, ErrPetNotFound)
}

func TestInHouseIncludesCheckoutDay(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, "p2", "2025-06-05", &models.UpsertCareLogRequest{Mood: "sleepy"})
	require.NoError(t, err)

	resp, err := svc.InHouse(ctx, "2025-06-05")
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)

	byPet := map[string]models.InHouseItem{}
	for _, item := range resp.Items {
		byPet[item.PetID] = item
	}
	assert.Nil(t, byPet["p1"].Log)
	require.NotNil(t, byPet["p2"].Log)
	assert.Equal(t, "sleepy", byPet["p2"].Log.Mood)
	assert.Equal(t, "VIP 01", byPet["p2"].RoomNumber)

	resp, err = svc.InHouse(ctx, "2025-06-06")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}
