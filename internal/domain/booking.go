package domain

import (
	"encoding/json"
	"fmt"

	"github.com/m04kA/PetHotelService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
	StatusCancelled  BookingStatus = "cancelled"
)

// Booking проживание одного или нескольких питомцев в одном номере.
// Даты полуинтервал [CheckIn, CheckOut): день выезда свободен для следующего гостя
type Booking struct {
	ID         string        `json:"id"`
	PetIDs     []string      `json:"petIds"`
	CheckIn    types.Date    `json:"checkIn"`
	CheckOut   types.Date    `json:"checkOut"`
	Status     BookingStatus `json:"status"`
	RoomNumber string        `json:"roomNumber"` // имя номера или UnassignedRoom
	TotalPrice float64       `json:"totalPrice"`
	Notes      string        `json:"notes"`
}

// IsActive returns true if the booking holds its room
func (b *Booking) IsActive() bool {
	return b.Status.IsActive()
}

// IsTerminal returns true for cancelled and checked-out bookings
func (b *Booking) IsTerminal() bool {
	return b.Status.IsTerminal()
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return !b.IsTerminal()
}

// HasRoom returns true if a real room is assigned
func (b *Booking) HasRoom() bool {
	return b.RoomNumber != "" && b.RoomNumber != UnassignedRoom
}

// Nights количество ночей проживания
func (b *Booking) Nights() int {
	return b.CheckIn.DaysUntil(b.CheckOut)
}

// Covers проверяет, что дата попадает в [CheckIn, CheckOut)
func (b *Booking) Covers(date types.Date) bool {
	return !date.Before(b.CheckIn) && date.Before(b.CheckOut)
}

// CoversInclusive проверяет CheckIn <= date <= CheckOut (день выезда тоже считается днем ухода)
func (b *Booking) CoversInclusive(date types.Date) bool {
	return !date.Before(b.CheckIn) && !date.After(b.CheckOut)
}

// Overlaps проверяет пересечение с полуинтервалом [checkIn, checkOut)
// Строгие неравенства: выезд одного и заезд другого в один день не конфликтуют
func (b *Booking) Overlaps(checkIn, checkOut types.Date) bool {
	return checkIn.Before(b.CheckOut) && b.CheckIn.Before(checkOut)
}

// HasPet проверяет, что питомец входит в бронирование
func (b *Booking) HasPet(petID string) bool {
	for _, id := range b.PetIDs {
		if id == petID {
			return true
		}
	}
	return false
}

// Clone глубокая копия (репозиторий не отдает наружу свои указатели)
func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}
	c := *b
	c.PetIDs = append([]string(nil), b.PetIDs...)
	return &c
}

// ValidatePetIDs от 1 до MaxPetsPerStay непустых уникальных id
func ValidatePetIDs(ids []string) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: at least one pet is required", ErrValidationFailed)
	}
	if len(ids) > MaxPetsPerStay {
		return fmt.Errorf("%w: too many pets (max %d)", ErrValidationFailed, MaxPetsPerStay)
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			return fmt.Errorf("%w: petIds must not contain empty ids", ErrValidationFailed)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: duplicate pet id %q", ErrValidationFailed, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// IsActive returns true for pending, confirmed and checked-in
func (s BookingStatus) IsActive() bool {
	for _, active := range ActiveStatuses {
		if s == active {
			return true
		}
	}
	return false
}

// IsTerminal returns true for cancelled and checked-out
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCheckedOut
}

// IsValid проверяет, что статус из закрытого перечисления
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo проверяет переход статуса.
// Из нетерминального статуса можно перейти в любой, конечные статусы не меняются
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if !next.IsValid() {
		return false
	}
	if s == next {
		return true
	}
	return !s.IsTerminal()
}

// ParseBookingStatus принимает как текущие значения, так и подписи из старых выгрузок
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if status.IsValid() {
		return status, nil
	}
	if legacy, ok := legacyBookingStatuses[s]; ok {
		return legacy, nil
	}
	return "", fmt.Errorf("%w: unknown booking status %q", ErrValidationFailed, s)
}

// UnmarshalJSON поддерживает статусы из старых выгрузок
func (s *BookingStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	status, err := ParseBookingStatus(raw)
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	From            *types.Date // Начало периода включительно (опционально)
	To              *types.Date // Конец периода включительно (опционально)
	RoomNumber      *string     // Фильтр по номеру (опционально)
	PetID           *string     // Фильтр по питомцу (опционально)
	IncludeInactive bool        // Включать ли отмененные и завершенные
}

// Match проверяет бронирование на соответствие фильтру.
// Период: бронирование попадает, если CheckIn или CheckOut внутри [From, To]
func (f BookingsFilter) Match(b *Booking) bool {
	if !f.IncludeInactive && !b.IsActive() {
		return false
	}
	if f.RoomNumber != nil && b.RoomNumber != *f.RoomNumber {
		return false
	}
	if f.PetID != nil && !b.HasPet(*f.PetID) {
		return false
	}
	if f.From == nil && f.To == nil {
		return true
	}
	return f.inPeriod(b.CheckIn) || f.inPeriod(b.CheckOut)
}

func (f BookingsFilter) inPeriod(d types.Date) bool {
	if f.From != nil && d.Before(*f.From) {
		return false
	}
	if f.To != nil && d.After(*f.To) {
		return false
	}
	return true
}
