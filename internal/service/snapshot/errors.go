package snapshot

import "errors"

var (
	// ErrInvalidDocument возвращается для документа, который нельзя разобрать или применить
	ErrInvalidDocument = errors.New("snapshot: invalid document")

	// ErrSyncDisabled возвращается, когда удаленное хранилище не настроено
	ErrSyncDisabled = errors.New("snapshot: remote sync is not configured")

	// ErrSyncNotFound возвращается, когда по ключу синхронизации ничего нет
	ErrSyncNotFound = errors.New("snapshot: nothing stored under sync id")

	// ErrInvalidSyncID возвращается для недопустимого ключа синхронизации
	ErrInvalidSyncID = errors.New("snapshot: invalid sync id")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("snapshot: internal error")
)
