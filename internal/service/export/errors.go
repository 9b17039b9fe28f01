package export

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном месяце
	ErrInvalidInput = errors.New("export: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("export: internal error")
)
