package snapshot

import (
	"context"

	"github.com/m04kA/PetHotelService/internal/domain"
)

// StateRepository полное состояние отеля
type StateRepository interface {
	Snapshot(ctx context.Context) *domain.Document
	Restore(ctx context.Context, doc *domain.Document) error
	Version(ctx context.Context) uint64
}

// Store хранилище сериализованного документа по ключу
type Store interface {
	Name() string
	Save(ctx context.Context, key string, data []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
}

// Metrics счетчик операций синхронизации
type Metrics interface {
	IncSyncOperation(backend, direction, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
