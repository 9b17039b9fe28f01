package domain

import "errors"

var (
	// ErrInvalidRoom возвращается для имени номера, которого нет в реестре
	ErrInvalidRoom = errors.New("domain: invalid room")

	// ErrInvalidRange возвращается, когда checkIn >= checkOut
	ErrInvalidRange = errors.New("domain: check-in must be before check-out")

	// ErrInvalidDate возвращается для строки даты, которую нельзя разобрать
	ErrInvalidDate = errors.New("domain: invalid date")

	// ErrValidationFailed возвращается при нарушении бизнес-правил бронирования
	// (пустой список питомцев, занятый номер, отрицательная цена и т.д.)
	ErrValidationFailed = errors.New("domain: validation failed")

	// ErrTerminalStateViolation возвращается при изменении номера или дат
	// у бронирования в конечном статусе (cancelled, checked_out)
	ErrTerminalStateViolation = errors.New("domain: booking is in a terminal state")
)
