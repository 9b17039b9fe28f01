package get_room_board

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

// PetRepository интерфейс репозитория питомцев
type PetRepository interface {
	GetPetsByIDs(ctx context.Context, ids []string) ([]*domain.Pet, error)
}

// Metrics текущая загрузка номеров
type Metrics interface {
	SetRoomsOccupied(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
