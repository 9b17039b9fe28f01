package state

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/pkg/types"
)

func d(s string) types.Date {
	return types.MustParseDate(s)
}

func newBooking(id, room string) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		PetIDs:     []string{"p1"},
		CheckIn:    d("2025-06-01"),
		CheckOut:   d("2025-06-05"),
		Status:     domain.StatusPending,
		RoomNumber: room,
		TotalPrice: 1200,
	}
}

func TestBookingCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	created, err := repo.CreateBooking(ctx, newBooking("b1", "1"))
	require.NoError(t, err)
	assert.Equal(t, "b1", created.ID)

	_, err = repo.CreateBooking(ctx, newBooking("b1", "2"))
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = repo.CreateBooking(ctx, newBooking("", "2"))
	assert.ErrorIs(t, err, ErrInvalidRecord)

	got, err := repo.GetBookingByID(ctx, "b1")
	require.NoError(t, err)
	got.RoomNumber = "9"
	got.PetIDs[0] = "changed"

	// внешние изменения не попадают в хранилище без UpdateBooking
	again, err := repo.GetBookingByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "1", again.RoomNumber)
	assert.Equal(t, "p1", again.PetIDs[0])

	require.NoError(t, repo.UpdateBooking(ctx, got))
	again, err = repo.GetBookingByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "9", again.RoomNumber)

	require.NoError(t, repo.UpdateBookingStatus(ctx, "b1", domain.StatusCancelled))

	active, err := repo.ListBookings(ctx, domain.BookingsFilter{})
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := repo.AllBookings(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = repo.GetBookingByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.ErrorIs(t, repo.UpdateBookingStatus(ctx, "missing", domain.StatusConfirmed), ErrBookingNotFound)
}

func TestDoSerializableRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	_, err := repo.CreateBooking(ctx, newBooking("b1", "1"))
	require.NoError(t, err)
	versionBefore := repo.Version(ctx)

	boom := errors.New("boom")
	err = repo.DoSerializable(ctx, func(txCtx context.Context) error {
		assert.True(t, IsInTransaction(txCtx))
		if _, err := repo.CreateBooking(txCtx, newBooking("b2", "2")); err != nil {
			return err
		}
		if err := repo.SetRoomStatus(txCtx, "3", domain.RoomMaintenance); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = repo.GetBookingByID(ctx, "b2")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	room, err := repo.GetRoom(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, domain.RoomVacant, room.Status)
	assert.Equal(t, versionBefore, repo.Version(ctx))
}

func TestDoSerializableCommits(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	err := repo.DoSerializable(ctx, func(txCtx context.Context) error {
		_, err := repo.CreateBooking(txCtx, newBooking("b1", "1"))
		return err
	})
	require.NoError(t, err)

	_, err = repo.GetBookingByID(ctx, "b1")
	assert.NoError(t, err)
}

func TestDoSerializableSerializesWriters(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.DoSerializable(ctx, func(txCtx context.Context) error {
				all, err := repo.AllBookings(txCtx)
				if err != nil {
					return err
				}
				// только первая горутина видит пустой список
				if len(all) > 0 {
					return nil
				}
				_, err = repo.CreateBooking(txCtx, newBooking(fmt.Sprintf("b%d", i), "1"))
				return err
			})
		}(i)
	}
	wg.Wait()

	all, err := repo.AllBookings(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPetsCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.CreatePet(ctx, &domain.Pet{ID: "p1", Name: "Mochi"})
	require.NoError(t, err)
	_, err = repo.CreatePet(ctx, &domain.Pet{ID: "p2", Name: "Tofu"})
	require.NoError(t, err)

	pets, err := repo.GetPetsByIDs(ctx, []string{"p2", "missing", "p1"})
	require.NoError(t, err)
	require.Len(t, pets, 2)
	assert.Equal(t, "Tofu", pets[0].Name)

	require.NoError(t, repo.UpdatePet(ctx, &domain.Pet{ID: "p1", Name: "Mochi II"}))
	p, err := repo.GetPetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Mochi II", p.Name)

	require.NoError(t, repo.DeletePet(ctx, "p1"))
	_, err = repo.GetPetByID(ctx, "p1")
	assert.ErrorIs(t, err, ErrPetNotFound)
	assert.ErrorIs(t, repo.DeletePet(ctx, "p1"), ErrPetNotFound)

	all, err := repo.ListPets(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRooms(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	rooms, err := repo.ListRooms(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, domain.TotalRooms)

	require.NoError(t, repo.SetRoomStatus(ctx, "VIP 02", domain.RoomMaintenance))
	room, err := repo.GetRoom(ctx, "VIP 02")
	require.NoError(t, err)
	assert.True(t, room.IsMaintenance())

	assert.ErrorIs(t, repo.SetRoomStatus(ctx, "99", domain.RoomMaintenance), ErrRoomNotFound)
}

func TestPreCheckOverwrite(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	require.NoError(t, repo.SavePreCheck(ctx, &domain.PreCheckRecord{BookingID: "b1", PetID: "p1", Weight: 4.0}))
	require.NoError(t, repo.SavePreCheck(ctx, &domain.PreCheckRecord{BookingID: "b1", PetID: "p1", Weight: 4.5}))
	require.NoError(t, repo.SavePreCheck(ctx, &domain.PreCheckRecord{BookingID: "b1", PetID: "p2", Weight: 3.0}))

	records, err := repo.ListPreChecks(ctx, "b1")
	require.NoError(t, err)
	assert.Len(t, records, 2)

	rec, err := repo.GetPreCheck(ctx, "b1", "p1")
	require.NoError(t, err)
	assert.Equal(t, 4.5, rec.Weight)

	_, err = repo.GetPreCheck(ctx, "b2", "p1")
	assert.ErrorIs(t, err, ErrPreCheckNotFound)
}

func TestCareLogUpsertKeepsID(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	first, err := repo.UpsertCareLog(ctx, &domain.DailyCareLog{ID: "l1", PetID: "p1", Date: d("2025-06-02"), Mood: "ok"})
	require.NoError(t, err)
	assert.Equal(t, "l1", first.ID)

	second, err := repo.UpsertCareLog(ctx, &domain.DailyCareLog{ID: "l2", PetID: "p1", Date: d("2025-06-02"), Mood: "happy"})
	require.NoError(t, err)
	assert.Equal(t, "l1", second.ID)

	_, err = repo.UpsertCareLog(ctx, &domain.DailyCareLog{ID: "l3", PetID: "p1", Date: d("2025-06-03")})
	require.NoError(t, err)

	logs, err := repo.ListCareLogsByDate(ctx, d("2025-06-02"))
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "happy", logs[0].Mood)

	byPet, err := repo.ListCareLogsByPet(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, byPet, 2)
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	repo.now = func() time.Time { return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC) }

	_, err := repo.CreatePet(ctx, &domain.Pet{ID: "p1", Name: "Mochi", Type: domain.PetCat})
	require.NoError(t, err)
	_, err = repo.CreateBooking(ctx, newBooking("b1", "VIP 01"))
	require.NoError(t, err)
	require.NoError(t, repo.SetRoomStatus(ctx, "6", domain.RoomMaintenance))
	require.NoError(t, repo.SavePreCheck(ctx, &domain.PreCheckRecord{BookingID: "b1", PetID: "p1", Weight: 4}))
	_, err = repo.UpsertCareLog(ctx, &domain.DailyCareLog{ID: "l1", PetID: "p1", Date: d("2025-06-02")})
	require.NoError(t, err)

	doc := repo.Snapshot(ctx)
	assert.Equal(t, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), doc.Timestamp)

	data, err := doc.Marshal()
	require.NoError(t, err)
	parsed, err := domain.ParseDocument(data)
	require.NoError(t, err)

	other := NewRepository()
	other.now = repo.now
	require.NoError(t, other.Restore(ctx, parsed))

	assert.Equal(t, doc, other.Snapshot(ctx))
}

func TestRestoreRejectsRecordsWithoutID(t *testing.T) {
	repo := NewRepository()
	err := repo.Restore(context.Background(), &domain.Document{Bookings: []domain.Booking{{}}})
	assert.ErrorIs(t, err, ErrInvalidRecord)
}
