package get_room_schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном месяце, периоде или номере
	ErrInvalidInput = errors.New("get_room_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_room_schedule: internal error")
)
