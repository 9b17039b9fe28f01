package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrPetNotFound возвращается, когда питомец из petIds не найден
	ErrPetNotFound = errors.New("create_booking: pet not found")

	// ErrRoomNotAvailable возвращается, когда номер или его пара заняты на период
	ErrRoomNotAvailable = errors.New("create_booking: room is not available")

	// ErrRoomUnderMaintenance возвращается, когда номер на обслуживании и политика это запрещает
	ErrRoomUnderMaintenance = errors.New("create_booking: room is under maintenance")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
