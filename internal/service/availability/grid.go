package availability

import (
	"fmt"

	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/pkg/types"
)

// MaxRangeDays ограничение на длину периода сетки
const MaxRangeDays = 366

// DateRange полуинтервал дат [From, To)
type DateRange struct {
	From types.Date
	To   types.Date
}

// NewDateRange проверяет, что From < To
func NewDateRange(from, to types.Date) (DateRange, error) {
	if from.IsZero() || to.IsZero() {
		return DateRange{}, fmt.Errorf("%w: empty range bound", domain.ErrInvalidDate)
	}
	if !from.Before(to) {
		return DateRange{}, fmt.Errorf("%w: %s >= %s", domain.ErrInvalidRange, from, to)
	}
	if from.DaysUntil(to) > MaxRangeDays {
		return DateRange{}, fmt.Errorf("%w: range longer than %d days", domain.ErrInvalidRange, MaxRangeDays)
	}
	return DateRange{From: from, To: to}, nil
}

// MonthRange все дни месяца, в который попадает дата
func MonthRange(day types.Date) DateRange {
	first := day.FirstOfMonth()
	return DateRange{From: first, To: types.NewDate(first.Time().Year(), first.Time().Month()+1, 1)}
}

// Days перечисляет даты периода
func (r DateRange) Days() []types.Date {
	n := r.From.DaysUntil(r.To)
	if n <= 0 {
		return nil
	}
	days := make([]types.Date, 0, n)
	for d := r.From; d.Before(r.To); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// Grid статусы номеров по дням периода
type Grid struct {
	Range DateRange
	Rooms []string
	Dates []types.Date

	cells map[string][]Status
}

// Grid строит сетку для указанных номеров (nil - все номера реестра)
func (b *Board) Grid(rng DateRange, rooms []string) (*Grid, error) {
	if _, err := NewDateRange(rng.From, rng.To); err != nil {
		return nil, err
	}
	if rooms == nil {
		rooms = domain.AllRoomNames()
	}

	g := &Grid{
		Range: rng,
		Rooms: rooms,
		Dates: rng.Days(),
		cells: make(map[string][]Status, len(rooms)),
	}

	for _, room := range rooms {
		row := make([]Status, len(g.Dates))
		for i, date := range g.Dates {
			status, err := b.StatusOf(room, date)
			if err != nil {
				return nil, err
			}
			row[i] = status
		}
		g.cells[room] = row
	}

	return g, nil
}

// At статус ячейки; false, если номер или дата вне сетки
func (g *Grid) At(room string, date types.Date) (Status, bool) {
	row, ok := g.cells[room]
	if !ok {
		return Status{}, false
	}
	idx := g.Range.From.DaysUntil(date)
	if idx < 0 || idx >= len(row) {
		return Status{}, false
	}
	return row[idx], true
}

// Row статусы номера по всем дням периода
func (g *Grid) Row(room string) []Status {
	return g.cells[room]
}

// GridFor строит сетку без предварительного индекса
func GridFor(rng DateRange, rooms []string, roomStates []domain.Room, bookings []*domain.Booking) (*Grid, error) {
	return NewBoard(roomStates, bookings).Grid(rng, rooms)
}
