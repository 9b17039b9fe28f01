package state

import (
	"context"
	"fmt"

	"github.com/m04kA/PetHotelService/internal/domain"
)

// CreateBooking сохраняет новое бронирование. ID назначает вызывающая сторона
func (r *Repository) CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if booking.ID == "" {
		return nil, fmt.Errorf("%w: CreateBooking - empty id", ErrInvalidRecord)
	}

	unlock := r.lock(ctx)
	defer unlock()

	if r.findBooking(booking.ID) >= 0 {
		return nil, fmt.Errorf("%w: CreateBooking - id=%s", ErrAlreadyExists, booking.ID)
	}

	r.bookings = append(r.bookings, booking.Clone())
	r.version++

	return booking.Clone(), nil
}

// GetBookingByID получает бронирование по ID
func (r *Repository) GetBookingByID(ctx context.Context, id string) (*domain.Booking, error) {
	unlock := r.rlock(ctx)
	defer unlock()

	idx := r.findBooking(id)
	if idx < 0 {
		return nil, ErrBookingNotFound
	}
	return r.bookings[idx].Clone(), nil
}

// ListBookings возвращает бронирования по фильтру в порядке создания
func (r *Repository) ListBookings(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	unlock := r.rlock(ctx)
	defer unlock()

	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if filter.Match(b) {
			result = append(result, b.Clone())
		}
	}
	return result, nil
}

// AllBookings все бронирования, включая отмененные
func (r *Repository) AllBookings(ctx context.Context) ([]*domain.Booking, error) {
	return r.ListBookings(ctx, domain.BookingsFilter{IncludeInactive: true})
}

// UpdateBooking заменяет бронирование целиком
func (r *Repository) UpdateBooking(ctx context.Context, booking *domain.Booking) error {
	unlock := r.lock(ctx)
	defer unlock()

	idx := r.findBooking(booking.ID)
	if idx < 0 {
		return ErrBookingNotFound
	}

	r.bookings[idx] = booking.Clone()
	r.version++
	return nil
}

// UpdateBookingStatus обновляет только статус
func (r *Repository) UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	unlock := r.lock(ctx)
	defer unlock()

	idx := r.findBooking(id)
	if idx < 0 {
		return ErrBookingNotFound
	}

	r.bookings[idx].Status = status
	r.version++
	return nil
}

func (r *Repository) findBooking(id string) int {
	for i, b := range r.bookings {
		if b.ID == id {
			return i
		}
	}
	return -1
}
