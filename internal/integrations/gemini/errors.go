package gemini

import "errors"

var (
	// ErrDisabled возвращается, когда генерация текста выключена в конфигурации
	ErrDisabled = errors.New("gemini client: text generation disabled")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("gemini client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("gemini client: invalid response")

	// ErrEmptyResponse возвращается, когда модель не вернула текста
	ErrEmptyResponse = errors.New("gemini client: empty response")
)
