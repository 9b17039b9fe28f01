package state

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("state.repository: booking not found")

	// ErrPetNotFound возвращается, когда питомец не найден
	ErrPetNotFound = errors.New("state.repository: pet not found")

	// ErrRoomNotFound возвращается, когда номера нет в состоянии
	ErrRoomNotFound = errors.New("state.repository: room not found")

	// ErrPreCheckNotFound возвращается, когда осмотр не найден
	ErrPreCheckNotFound = errors.New("state.repository: pre-check record not found")

	// ErrAlreadyExists возвращается при вставке записи с существующим ID
	ErrAlreadyExists = errors.New("state.repository: record already exists")

	// ErrInvalidRecord возвращается для записи без обязательного идентификатора
	ErrInvalidRecord = errors.New("state.repository: invalid record")
)
