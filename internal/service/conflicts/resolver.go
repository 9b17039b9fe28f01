package conflicts

import (
	"fmt"

	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/pkg/types"
)

// RoomSet множество имен номеров
type RoomSet map[string]struct{}

func (s RoomSet) Has(room string) bool {
	_, ok := s[room]
	return ok
}

func (s RoomSet) add(room string) {
	s[room] = struct{}{}
}

// Sorted номера в порядке реестра (стабильный вывод для UI)
func (s RoomSet) Sorted() []string {
	result := make([]string, 0, len(s))
	for _, room := range domain.AllRoomNames() {
		if s.Has(room) {
			result = append(result, room)
		}
	}
	return result
}

// ValidateRange проверяет даты периода проживания
func ValidateRange(checkIn, checkOut types.Date) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return fmt.Errorf("%w: check-in and check-out are required", domain.ErrInvalidDate)
	}
	if !checkIn.Before(checkOut) {
		return fmt.Errorf("%w: %s >= %s", domain.ErrInvalidRange, checkIn, checkOut)
	}
	return nil
}

// UnavailableRooms номера, которые нельзя выбрать на период [checkIn, checkOut).
// Для каждой активной брони (кроме excludeBookingID), пересекающейся с периодом,
// в множество попадает ее номер и все парные номера
func UnavailableRooms(checkIn, checkOut types.Date, bookings []*domain.Booking, excludeBookingID string) (RoomSet, error) {
	if err := ValidateRange(checkIn, checkOut); err != nil {
		return nil, err
	}

	unavailable := make(RoomSet)
	for _, b := range bookings {
		if excludeBookingID != "" && b.ID == excludeBookingID {
			continue
		}
		// неизвестные номера (например из старого снапшота) не занимают реестр
		if !b.IsActive() || !b.HasRoom() || !domain.IsValidRoom(b.RoomNumber) {
			continue
		}
		if !b.Overlaps(checkIn, checkOut) {
			continue
		}

		unavailable.add(b.RoomNumber)
		for _, partner := range domain.PartnersOf(b.RoomNumber) {
			unavailable.add(partner)
		}
	}

	return unavailable, nil
}

// UnavailableRoomsFromStrings как UnavailableRooms, но принимает даты строками "YYYY-MM-DD"
func UnavailableRoomsFromStrings(checkIn, checkOut string, bookings []*domain.Booking, excludeBookingID string) (RoomSet, error) {
	in, err := types.ParseDate(checkIn)
	if err != nil {
		return nil, fmt.Errorf("%w: checkIn: %v", domain.ErrInvalidDate, err)
	}
	out, err := types.ParseDate(checkOut)
	if err != nil {
		return nil, fmt.Errorf("%w: checkOut: %v", domain.ErrInvalidDate, err)
	}
	return UnavailableRooms(in, out, bookings, excludeBookingID)
}

// CheckRoom проверяет, что номер можно назначить брони на период.
// Возвращает ErrInvalidRoom для неизвестного номера и ErrValidationFailed при конфликте
func CheckRoom(room string, checkIn, checkOut types.Date, bookings []*domain.Booking, excludeBookingID string) error {
	if err := domain.ValidateRoom(room); err != nil {
		return err
	}

	unavailable, err := UnavailableRooms(checkIn, checkOut, bookings, excludeBookingID)
	if err != nil {
		return err
	}

	if unavailable.Has(room) {
		return fmt.Errorf("%w: room %s is unavailable for %s..%s", domain.ErrValidationFailed, room, checkIn, checkOut)
	}
	return nil
}
