package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном пароле
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidToken возвращается для токена, который не удалось проверить
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrExpiredToken возвращается для просроченного токена
	ErrExpiredToken = errors.New("auth: token expired")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
