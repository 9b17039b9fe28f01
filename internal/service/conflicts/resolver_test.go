package conflicts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/pkg/types"
)

func d(s string) types.Date {
	return types.MustParseDate(s)
}

func booking(id, room, checkIn, checkOut string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		PetIDs:     []string{"p1"},
		CheckIn:    d(checkIn),
		CheckOut:   d(checkOut),
		Status:     status,
		RoomNumber: room,
	}
}

func TestUnavailableRoomsScenario(t *testing.T) {
	bookings := []*domain.Booking{
		booking("b1", "1", "2025-06-01", "2025-06-05", domain.StatusCheckedIn),
	}

	set, err := UnavailableRoomsFromStrings("2025-06-03", "2025-06-04", bookings, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "VIP 01"}, set.Sorted())

	// день выезда: заезд в тот же день не конфликтует
	set, err = UnavailableRoomsFromStrings("2025-06-05", "2025-06-06", bookings, "")
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestUnavailableRoomsVIPLocksBothStandardRooms(t *testing.T) {
	bookings := []*domain.Booking{
		booking("b1", "VIP 04", "2025-06-01", "2025-06-05", domain.StatusConfirmed),
	}

	set, err := UnavailableRooms(d("2025-06-02"), d("2025-06-03"), bookings, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"4", "9", "VIP 04"}, set.Sorted())
}

func TestUnavailableRoomsSkipsExcludedAndInactive(t *testing.T) {
	bookings := []*domain.Booking{
		booking("b1", "2", "2025-06-01", "2025-06-05", domain.StatusConfirmed),
		booking("b2", "3", "2025-06-01", "2025-06-05", domain.StatusCancelled),
		booking("b3", "4", "2025-06-01", "2025-06-05", domain.StatusCheckedOut),
		booking("b4", domain.UnassignedRoom, "2025-06-01", "2025-06-05", domain.StatusPending),
		booking("b5", "5", "2025-06-01", "2025-06-05", domain.StatusPending),
	}

	set, err := UnavailableRooms(d("2025-06-02"), d("2025-06-04"), bookings, "b1")
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "VIP 05"}, set.Sorted())
}

func TestUnavailableRoomsIgnoresUnknownRoomNames(t *testing.T) {
	bookings := []*domain.Booking{
		booking("b1", "VIP 6", "2025-06-01", "2025-06-05", domain.StatusConfirmed),
		booking("b2", "11", "2025-06-01", "2025-06-05", domain.StatusPending),
		booking("b3", "2", "2025-06-01", "2025-06-05", domain.StatusConfirmed),
	}

	set, err := UnavailableRooms(d("2025-06-02"), d("2025-06-03"), bookings, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "VIP 02"}, set.Sorted())
	assert.False(t, set.Has("VIP 6"))
	assert.False(t, set.Has("11"))
}

func TestUnavailableRoomsDetectsDoubleBooking(t *testing.T) {
	existing := booking("b1", "7", "2025-06-10", "2025-06-15", domain.StatusConfirmed)
	candidates := [][2]string{
		{"2025-06-10", "2025-06-15"},
		{"2025-06-09", "2025-06-11"},
		{"2025-06-14", "2025-06-20"},
		{"2025-06-11", "2025-06-12"},
		{"2025-06-01", "2025-06-30"},
	}

	for _, c := range candidates {
		set, err := UnavailableRoomsFromStrings(c[0], c[1], []*domain.Booking{existing}, "b2")
		require.NoError(t, err)
		assert.True(t, set.Has("7"), "range %s..%s", c[0], c[1])
		assert.True(t, set.Has("VIP 02"), "range %s..%s", c[0], c[1])
	}
}

func TestUnavailableRoomsErrors(t *testing.T) {
	_, err := UnavailableRoomsFromStrings("2025-06-05", "2025-06-05", nil, "")
	assert.ErrorIs(t, err, domain.ErrInvalidRange)

	_, err = UnavailableRoomsFromStrings("2025-06-06", "2025-06-05", nil, "")
	assert.ErrorIs(t, err, domain.ErrInvalidRange)

	_, err = UnavailableRoomsFromStrings("June 5", "2025-06-07", nil, "")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	_, err = UnavailableRoomsFromStrings("2025-06-05", "2025-13-01", nil, "")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	_, err = UnavailableRooms(types.Date{}, d("2025-06-05"), nil, "")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

// Обслуживание номера - состояние отображения, а не конфликт бронирования
func TestMaintenanceIsNotAConflict(t *testing.T) {
	set, err := UnavailableRoomsFromStrings("2025-06-01", "2025-06-03", nil, "")
	require.NoError(t, err)
	assert.False(t, set.Has("6"))
}

func TestCheckRoom(t *testing.T) {
	bookings := []*domain.Booking{
		booking("b1", "VIP 01", "2025-06-01", "2025-06-05", domain.StatusConfirmed),
	}

	err := CheckRoom("6", d("2025-06-03"), d("2025-06-07"), bookings, "")
	assert.ErrorIs(t, err, domain.ErrValidationFailed)

	err = CheckRoom("6", d("2025-06-05"), d("2025-06-07"), bookings, "")
	assert.NoError(t, err)

	// свою бронь можно передвигать внутри своего же периода
	err = CheckRoom("VIP 01", d("2025-06-02"), d("2025-06-06"), bookings, "b1")
	assert.NoError(t, err)

	err = CheckRoom("VIP 7", d("2025-06-02"), d("2025-06-06"), bookings, "")
	assert.ErrorIs(t, err, domain.ErrInvalidRoom)
}
