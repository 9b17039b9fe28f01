package carelogs

import "errors"

var (
	// ErrPetNotFound возвращается, когда питомец не найден
	ErrPetNotFound = errors.New("carelogs: pet not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("carelogs: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("carelogs: internal error")
)
