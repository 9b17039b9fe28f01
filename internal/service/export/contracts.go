package export

import (
	"context"

	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/internal/usecase/get_room_schedule"
)

// ScheduleBuilder сетка занятости номеров
type ScheduleBuilder interface {
	Execute(ctx context.Context, req *get_room_schedule.Request) (*get_room_schedule.Response, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	AllBookings(ctx context.Context) ([]*domain.Booking, error)
}

// PetRepository интерфейс репозитория питомцев
type PetRepository interface {
	ListPets(ctx context.Context) ([]*domain.Pet, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
