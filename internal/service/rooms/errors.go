package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается для номера вне реестра
	ErrRoomNotFound = errors.New("rooms: room not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("rooms: internal error")
)
