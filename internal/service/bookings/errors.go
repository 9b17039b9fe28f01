package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrPetNotFound возвращается, когда питомец из petIds не найден
	ErrPetNotFound = errors.New("bookings: pet not found")

	// ErrCannotCancel возвращается, когда бронирование уже в конечном статусе
	ErrCannotCancel = errors.New("bookings: booking cannot be cancelled")

	// ErrInvalidStatus возвращается при недопустимом статусе или переходе
	ErrInvalidStatus = errors.New("bookings: invalid booking status")

	// ErrRoomNotAvailable возвращается, когда номер или его пара заняты на период
	ErrRoomNotAvailable = errors.New("bookings: room is not available")

	// ErrRoomUnderMaintenance возвращается, когда номер на обслуживании и политика это запрещает
	ErrRoomUnderMaintenance = errors.New("bookings: room is under maintenance")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
