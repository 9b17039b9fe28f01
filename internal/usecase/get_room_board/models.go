package get_room_board

import (
	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/internal/service/availability"
	"github.com/m04kA/PetHotelService/pkg/types"
)

// Request модель запроса карты номеров на дату
type Request struct {
	Date types.Date
}

// Response карта отеля на дату
type Response struct {
	Date     types.Date
	Rooms    []RoomState
	Occupied int // номера со своей активной бронью
	Locked   int
	Vacant   int
}

// RoomState состояние одного номера
type RoomState struct {
	Room     domain.Room
	Kind     availability.Kind
	Booking  *domain.Booking // бронь номера (Occupied) или пары (Locked)
	LockedBy string
	Pets     []*domain.Pet // питомцы брони, если номер занят
}
