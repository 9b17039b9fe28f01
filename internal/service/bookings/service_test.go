package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/internal/infra/storage/state"
	"github.com/m04kA/PetHotelService/internal/service/bookings/models"
	"github.com/m04kA/PetHotelService/internal/service/conflicts"
	"github.com/m04kA/PetHotelService/pkg/logger"
	"github.com/m04kA/PetHotelService/pkg/ptr"
	"github.com/m04kA/PetHotelService/pkg/types"
)

func d(s string) types.Date {
	return types.MustParseDate(s)
}

func seed(t *testing.T, repo *state.Repository, bookings ...*domain.Booking) {
	t.Helper()
	ctx := context.Background()
	for _, id := range []string{"p1", "p2"} {
		_, err := repo.CreatePet(ctx, &domain.Pet{ID: id, Name: id})
		require.NoError(t, err)
	}
	for _, b := range bookings {
		_, err := repo.CreateBooking(ctx, b)
		require.NoError(t, err)
	}
}

func booking(id, room, in, out string, status domain.BookingStatus, price float64) *domain.Booking {
	return &domain.Booking{
		ID: id, PetIDs: []string{"p1"}, CheckIn: d(in), CheckOut: d(out),
		Status: status, RoomNumber: room, TotalPrice: price,
	}
}

func newService(repo *state.Repository, blockMaintenance bool) *Service {
	return NewService(repo, repo, repo, repo, nil, logger.Nop(), blockMaintenance)
}

func TestGetByID(t *testing.T) {
	repo := state.NewRepository()
	seed(t, repo, booking("b1", "1", "2025-06-01", "2025-06-04", domain.StatusConfirmed, 900))
	svc := newService(repo, false)

	resp, err := svc.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", resp.CheckIn)
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, "confirmed", resp.Status)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestListByMonthWithRevenue(t *testing.T) {
	repo := state.NewRepository()
	seed(t, repo,
		booking("b1", "1", "2025-05-29", "2025-06-02", domain.StatusCheckedOut, 1000),
		booking("b2", "2", "2025-06-10", "2025-06-12", domain.StatusConfirmed, 500),
		booking("b3", "3", "2025-06-20", "2025-07-02", domain.StatusCancelled, 3000),
		booking("b4", "4", "2025-07-05", "2025-07-08", domain.StatusPending, 700),
	)
	svc := newService(repo, false)
	ctx := context.Background()

	resp, err := svc.List(ctx, &models.ListBookingsRequest{Month: "2025-06", IncludeInactive: true})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	// отмененная бронь не входит в выручку
	assert.Equal(t, 1500.0, resp.Revenue)

	resp, err = svc.List(ctx, &models.ListBookingsRequest{Month: "2025-06"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	resp, err = svc.List(ctx, &models.ListBookingsRequest{Status: ptr.Ptr("cancelled")})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "b3", resp.Bookings[0].ID)

	_, err = svc.List(ctx, &models.ListBookingsRequest{Month: "June"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(ctx, &models.ListBookingsRequest{Status: ptr.Ptr("lost")})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateMovesBookingAndChecksConflicts(t *testing.T) {
	repo := state.NewRepository()
	seed(t, repo,
		booking("b1", "1", "2025-06-01", "2025-06-05", domain.StatusConfirmed, 900),
		booking("b2", "VIP 03", "2025-06-03", "2025-06-06", domain.StatusPending, 1500),
	)
	svc := newService(repo, false)
	ctx := context.Background()

	// 8 - вторая пара VIP 03
	_, err := svc.Update(ctx, "b1", &models.UpdateBookingRequest{RoomNumber: ptr.Ptr("8")})
	assert.ErrorIs(t, err, ErrRoomNotAvailable)

	// сдвиг внутри своего же номера не конфликтует сам с собой
	resp, err := svc.Update(ctx, "b1", &models.UpdateBookingRequest{
		CheckIn: ptr.Ptr("2025-06-02"), CheckOut: ptr.Ptr("2025-06-07"), TotalPrice: ptr.Ptr(1200.0),
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-06-07", resp.CheckOut)
	assert.Equal(t, 1200.0, resp.TotalPrice)

	_, err = svc.Update(ctx, "b1", &models.UpdateBookingRequest{CheckOut: ptr.Ptr("2025-06-01")})
	assert.ErrorIs(t, err, domain.ErrInvalidRange)

	_, err = svc.Update(ctx, "b1", &models.UpdateBookingRequest{RoomNumber: ptr.Ptr("VIP 9")})
	assert.ErrorIs(t, err, domain.ErrInvalidRoom)

	_, err = svc.Update(ctx, "b1", &models.UpdateBookingRequest{PetIDs: &[]string{"ghost"}})
	assert.ErrorIs(t, err, ErrPetNotFound)

	_, err = svc.Update(ctx, "b1", &models.UpdateBookingRequest{PetIDs: &[]string{"p1", "p1"}})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrValidationFailed)

	_, err = svc.Update(ctx, "b1", &models.UpdateBookingRequest{PetIDs: &[]string{"p2", ""}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// неудачные попытки не изменили бронь
	stored, err := repo.GetBookingByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "1", stored.RoomNumber)
	assert.Equal(t, []string{"p1"}, stored.PetIDs)

	all, err := repo.AllBookings(ctx)
	require.NoError(t, err)
	for _, b := range all {
		others, err := conflicts.UnavailableRooms(b.CheckIn, b.CheckOut, all, b.ID)
		require.NoError(t, err)
		assert.False(t, others.Has(b.RoomNumber), "booking %s overlaps", b.ID)
	}
}

func TestUpdateTerminalBooking(t *testing.T) {
	repo := state.NewRepository()
	seed(t, repo, booking("b1", "1", "2025-06-01", "2025-06-05", domain.StatusCancelled, 900))
	svc := newService(repo, false)
	ctx := context.Background()

	_, err := svc.Update(ctx, "b1", &models.UpdateBookingRequest{RoomNumber: ptr.Ptr("2")})
	assert.ErrorIs(t, err, domain.ErrTerminalStateViolation)

	resp, err := svc.Update(ctx, "b1", &models.UpdateBookingRequest{Notes: ptr.Ptr("refunded")})
	require.NoError(t, err)
	assert.Equal(t, "refunded", resp.Notes)
}

func TestUpdateMaintenancePolicy(t *testing.T) {
	repo := state.NewRepository()
	seed(t, repo, booking("b1", "1", "2025-06-01", "2025-06-05", domain.StatusConfirmed, 900))
	require.NoError(t, repo.SetRoomStatus(context.Background(), "2", domain.RoomMaintenance))

	_, err := newService(repo, true).Update(context.Background(), "b1", &models.UpdateBookingRequest{RoomNumber: ptr.Ptr("2")})
	assert.ErrorIs(t, err, ErrRoomUnderMaintenance)

	_, err = newService(repo, false).Update(context.Background(), "b1", &models.UpdateBookingRequest{RoomNumber: ptr.Ptr("2")})
	assert.NoError(t, err)
}

func TestSetStatus(t *testing.T) {
	repo := state.NewRepository()
	seed(t, repo,
		booking("b1", "1", "2025-06-01", "2025-06-05", domain.StatusPending, 900),
		booking("b2", domain.UnassignedRoom, "2025-06-01", "2025-06-05", domain.StatusPending, 900),
	)
	svc := newService(repo, false)
	ctx := context.Background()

	resp, err := svc.SetStatus(ctx, "b1", "checked_in")
	require.NoError(t, err)
	assert.Equal(t, "checked_in", resp.Status)

	// подпись статуса из старой выгрузки
	resp, err = svc.SetStatus(ctx, "b1", "已退房")
	require.NoError(t, err)
	assert.Equal(t, "checked_out", resp.Status)

	_, err = svc.SetStatus(ctx, "b1", "confirmed")
	assert.ErrorIs(t, err, domain.ErrTerminalStateViolation)

	_, err = svc.SetStatus(ctx, "b2", "checked_in")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.SetStatus(ctx, "b2", "sleeping")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.SetStatus(ctx, "missing", "confirmed")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelFreesRoomAndPartners(t *testing.T) {
	repo := state.NewRepository()
	seed(t, repo, booking("b1", "VIP 02", "2025-06-01", "2025-06-05", domain.StatusConfirmed, 900))
	svc := newService(repo, false)
	ctx := context.Background()

	require.NoError(t, svc.Cancel(ctx, "b1"))
	assert.ErrorIs(t, svc.Cancel(ctx, "b1"), ErrCannotCancel)
	assert.ErrorIs(t, svc.Cancel(ctx, "missing"), ErrBookingNotFound)

	all, err := repo.AllBookings(ctx)
	require.NoError(t, err)
	set, err := conflicts.UnavailableRooms(d("2025-06-02"), d("2025-06-03"), all, "")
	require.NoError(t, err)
	assert.Empty(t, set)
}
