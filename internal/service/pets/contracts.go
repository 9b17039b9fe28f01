package pets

import (
	"context"

	"github.com/m04kA/PetHotelService/internal/domain"
)

// PetRepository интерфейс репозитория питомцев
type PetRepository interface {
	CreatePet(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
	GetPetByID(ctx context.Context, id string) (*domain.Pet, error)
	ListPets(ctx context.Context) ([]*domain.Pet, error)
	UpdatePet(ctx context.Context, pet *domain.Pet) error
	DeletePet(ctx context.Context, id string) error
}

// BookingRepository нужен для проверки ссылок на питомца перед удалением
type BookingRepository interface {
	AllBookings(ctx context.Context) ([]*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
