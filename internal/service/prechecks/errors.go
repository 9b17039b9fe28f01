package prechecks

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("prechecks: booking not found")

	// ErrPetNotInBooking возвращается, когда питомец не входит в бронирование
	ErrPetNotInBooking = errors.New("prechecks: pet is not part of the booking")

	// ErrPreCheckNotFound возвращается, когда осмотр не найден
	ErrPreCheckNotFound = errors.New("prechecks: pre-check record not found")

	// ErrBookingClosed возвращается для отмененной или завершенной брони
	ErrBookingClosed = errors.New("prechecks: booking is closed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("prechecks: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("prechecks: internal error")
)
