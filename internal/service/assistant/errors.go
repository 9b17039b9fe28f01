package assistant

import "errors"

var (
	// ErrPetNotFound возвращается, когда питомец не найден
	ErrPetNotFound = errors.New("assistant: pet not found")

	// ErrPreCheckNotFound возвращается, когда осмотр для сводки не найден
	ErrPreCheckNotFound = errors.New("assistant: pre-check record not found")

	// ErrGenerationFailed возвращается, когда текст не удалось получить и запасного текста нет
	ErrGenerationFailed = errors.New("assistant: text generation failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("assistant: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("assistant: internal error")
)
