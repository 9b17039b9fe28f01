package dashboard

import "errors"

var (
	// ErrInvalidInput возвращается при некорректной дате
	ErrInvalidInput = errors.New("dashboard: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("dashboard: internal error")
)
