package availability

import (
	"fmt"
	"sort"

	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/pkg/types"
)

// Kind состояние номера на дату
type Kind string

const (
	KindVacant      Kind = "vacant"
	KindOccupied    Kind = "occupied"
	KindLocked      Kind = "locked"
	KindMaintenance Kind = "maintenance"
)

// Status ровно одно состояние номера на дату.
// Для Occupied Booking - бронь самого номера, для Locked - бронь парного номера
type Status struct {
	Kind     Kind
	Booking  *domain.Booking
	LockedBy string // имя парного номера, который держит блокировку
}

func (s Status) IsVacant() bool { return s.Kind == KindVacant }

// Board индекс активных бронирований по номерам.
// Строится один раз на снимок репозитория, дальше запросы не сканируют весь список
type Board struct {
	byRoom      map[string][]*domain.Booking
	maintenance map[string]bool
}

// NewBoard строит индекс. Неактивные и неназначенные бронирования отбрасываются,
// внутри номера брони отсортированы по дате заезда и ID (детерминированный выбор)
func NewBoard(rooms []domain.Room, bookings []*domain.Booking) *Board {
	b := &Board{
		byRoom:      make(map[string][]*domain.Booking),
		maintenance: make(map[string]bool),
	}

	for i := range rooms {
		if rooms[i].IsMaintenance() {
			b.maintenance[rooms[i].Name] = true
		}
	}

	for _, booking := range bookings {
		if !booking.IsActive() || !booking.HasRoom() {
			continue
		}
		b.byRoom[booking.RoomNumber] = append(b.byRoom[booking.RoomNumber], booking)
	}

	for _, list := range b.byRoom {
		sort.Slice(list, func(i, j int) bool {
			if !list[i].CheckIn.Equal(list[j].CheckIn) {
				return list[i].CheckIn.Before(list[j].CheckIn)
			}
			return list[i].ID < list[j].ID
		})
	}

	return b
}

// StatusOf состояние номера на дату:
// 1. Maintenance, если номер вручную выведен на обслуживание
// 2. Occupied, если активная бронь номера покрывает дату ([checkIn, checkOut))
// 3. Locked, если активная бронь парного номера покрывает дату
// 4. Vacant
func (b *Board) StatusOf(room string, date types.Date) (Status, error) {
	if err := domain.ValidateRoom(room); err != nil {
		return Status{}, err
	}
	if date.IsZero() {
		return Status{}, fmt.Errorf("%w: empty date", domain.ErrInvalidDate)
	}

	if b.maintenance[room] {
		return Status{Kind: KindMaintenance}, nil
	}

	if booking := b.covering(room, date); booking != nil {
		return Status{Kind: KindOccupied, Booking: booking}, nil
	}

	for _, partner := range domain.PartnersOf(room) {
		if booking := b.covering(partner, date); booking != nil {
			return Status{Kind: KindLocked, Booking: booking, LockedBy: partner}, nil
		}
	}

	return Status{Kind: KindVacant}, nil
}

// BookingOn активная бронь самого номера на дату (без учета обслуживания и пары)
func (b *Board) BookingOn(room string, date types.Date) *domain.Booking {
	return b.covering(room, date)
}

func (b *Board) covering(room string, date types.Date) *domain.Booking {
	for _, booking := range b.byRoom[room] {
		if booking.CheckIn.After(date) {
			// список отсортирован по заезду, дальше только более поздние
			break
		}
		if booking.Covers(date) {
			return booking
		}
	}
	return nil
}

// StatusOf вычисляет состояние без предварительного индекса
func StatusOf(room string, date types.Date, rooms []domain.Room, bookings []*domain.Booking) (Status, error) {
	return NewBoard(rooms, bookings).StatusOf(room, date)
}
