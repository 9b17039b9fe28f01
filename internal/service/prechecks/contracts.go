package prechecks

import (
	"context"
	"time"

	"github.com/m04kA/PetHotelService/internal/domain"
)

// PreCheckRepository интерфейс хранилища осмотров
type PreCheckRepository interface {
	SavePreCheck(ctx context.Context, record *domain.PreCheckRecord) error
	GetPreCheck(ctx context.Context, bookingID, petID string) (*domain.PreCheckRecord, error)
	ListPreChecks(ctx context.Context, bookingID string) ([]*domain.PreCheckRecord, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetBookingByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
