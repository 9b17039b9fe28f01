package get_room_board

import "errors"

var (
	// ErrInvalidInput возвращается при некорректной дате
	ErrInvalidInput = errors.New("get_room_board: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_room_board: internal error")
)
