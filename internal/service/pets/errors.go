package pets

import "errors"

var (
	// ErrPetNotFound возвращается, когда питомец не найден
	ErrPetNotFound = errors.New("pets: pet not found")

	// ErrPetInUse возвращается при удалении питомца с незавершенной бронью
	ErrPetInUse = errors.New("pets: pet is referenced by an active booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("pets: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("pets: internal error")
)
