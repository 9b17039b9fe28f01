package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/internal/service/conflicts"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if err := domain.ValidatePetIDs(req.PetIDs); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// Проверяем даты (InvalidDate / InvalidRange)
	if err := conflicts.ValidateRange(req.CheckIn, req.CheckOut); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if req.TotalPrice < 0 {
		return fmt.Errorf("%w: %w: totalPrice must not be negative", ErrInvalidInput, domain.ErrValidationFailed)
	}

	if len(req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: %w: notes too long", ErrInvalidInput, domain.ErrValidationFailed)
	}

	if req.Status != "" && !req.Status.IsActive() {
		return fmt.Errorf("%w: %w: new booking must start in an active status", ErrInvalidInput, domain.ErrValidationFailed)
	}

	if hasRoom(req.RoomNumber) {
		if err := domain.ValidateRoom(req.RoomNumber); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	} else if req.Status == domain.StatusCheckedIn {
		return fmt.Errorf("%w: %w: checked-in booking requires a room", ErrInvalidInput, domain.ErrValidationFailed)
	}

	return nil
}

// checkRoomAvailable проверяет конфликт с существующими бронями (включая парные номера)
func checkRoomAvailable(req *Request, bookings []*domain.Booking) error {
	err := conflicts.CheckRoom(req.RoomNumber, req.CheckIn, req.CheckOut, bookings, "")
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrValidationFailed) {
		return fmt.Errorf("%w: %w", ErrRoomNotAvailable, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

func hasRoom(room string) bool {
	return room != "" && room != domain.UnassignedRoom
}
