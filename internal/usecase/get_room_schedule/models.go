package get_room_schedule

import (
	"github.com/m04kA/PetHotelService/internal/service/availability"
	"github.com/m04kA/PetHotelService/pkg/types"
)

// Request модель запроса сетки занятости.
// Задается либо Month (YYYY-MM), либо явный период [From, To)
type Request struct {
	Month string
	From  types.Date
	To    types.Date
	Rooms []string // пусто - все номера
}

// Response сетка номеров по дням
type Response struct {
	From  types.Date
	To    types.Date
	Dates []types.Date
	Rows  []Row
}

// Row строка сетки одного номера
type Row struct {
	Room  string
	Cells []Cell
}

// Cell ячейка сетки
type Cell struct {
	Date      types.Date
	Kind      availability.Kind
	BookingID string
	LockedBy  string
	// Первый день брони (для отрисовки полосы в календаре)
	IsStart bool
}
