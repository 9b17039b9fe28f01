package get_available_rooms

import (
	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/pkg/types"
)

// Request модель запроса на подбор номеров
type Request struct {
	CheckIn          types.Date
	CheckOut         types.Date
	ExcludeBookingID string // редактируемая бронь не конфликтует сама с собой
}

// Response модель ответа со списком номеров
type Response struct {
	CheckIn     types.Date
	CheckOut    types.Date
	Rooms       []RoomOption
	Unavailable []string // номера в порядке реестра
}

// RoomOption номер и возможность его выбрать на период
type RoomOption struct {
	Name        string
	IsVIP       bool
	Floor       domain.Floor
	Partners    []string
	Available   bool
	Maintenance bool // отображается, но не блокирует выбор
}
