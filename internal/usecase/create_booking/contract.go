package create_booking

import (
	"context"

	"github.com/m04kA/PetHotelService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	AllBookings(ctx context.Context) ([]*domain.Booking, error)
}

// PetRepository интерфейс репозитория питомцев
type PetRepository interface {
	GetPetsByIDs(ctx context.Context, ids []string) ([]*domain.Pet, error)
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetRoom(ctx context.Context, name string) (*domain.Room, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// IDGenerator генератор идентификаторов
type IDGenerator interface {
	NewID(prefix string) string
}

// Metrics счетчики операций с бронированиями
type Metrics interface {
	IncBookingOperation(operation, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
