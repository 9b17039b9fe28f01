package carelogs

import (
	"context"

	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/pkg/types"
)

// CareLogRepository интерфейс хранилища дневников ухода
type CareLogRepository interface {
	UpsertCareLog(ctx context.Context, log *domain.DailyCareLog) (*domain.DailyCareLog, error)
	ListCareLogsByDate(ctx context.Context, date types.Date) ([]*domain.DailyCareLog, error)
	ListCareLogsByPet(ctx context.Context, petID string) ([]*domain.DailyCareLog, error)
}

// PetRepository интерфейс репозитория питомцев
type PetRepository interface {
	GetPetByID(ctx context.Context, id string) (*domain.Pet, error)
	GetPetsByIDs(ctx context.Context, ids []string) ([]*domain.Pet, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListBookings(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// IDGenerator генератор идентификаторов
type IDGenerator interface {
	NewID(prefix string) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
