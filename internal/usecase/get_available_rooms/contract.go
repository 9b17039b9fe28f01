package get_available_rooms

import (
	"context"

	"github.com/m04kA/PetHotelService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	AllBookings(ctx context.Context) ([]*domain.Booking, error)
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	ListRooms(ctx context.Context) ([]domain.Room, error)
}

// Metrics счетчик проверок конфликтов
type Metrics interface {
	IncConflictCheck(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
