package assistant

import (
	"context"

	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/internal/integrations/gemini"
	"github.com/m04kA/PetHotelService/pkg/types"
)

// TextGenerator клиент генерации текста
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, opts gemini.Options) (string, error)
}

// PetRepository интерфейс репозитория питомцев
type PetRepository interface {
	GetPetByID(ctx context.Context, id string) (*domain.Pet, error)
	ListPets(ctx context.Context) ([]*domain.Pet, error)
}

// PreCheckRepository интерфейс хранилища осмотров
type PreCheckRepository interface {
	GetPreCheck(ctx context.Context, bookingID, petID string) (*domain.PreCheckRecord, error)
	SavePreCheck(ctx context.Context, record *domain.PreCheckRecord) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// CareLogRepository интерфейс хранилища дневников
type CareLogRepository interface {
	ListCareLogsByDate(ctx context.Context, date types.Date) ([]*domain.DailyCareLog, error)
}

// Metrics счетчик обращений к генерации текста
type Metrics interface {
	IncTextGeneration(kind, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
