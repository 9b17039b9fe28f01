package get_available_rooms

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном периоде
	ErrInvalidInput = errors.New("get_available_rooms: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_rooms: internal error")
)
