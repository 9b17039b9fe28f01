package get_room_board

import (
	getRoomBoard "github.com/m04kA/PetHotelService/internal/usecase/get_room_board"
)

// BoardResponse HTTP response model
type BoardResponse struct {
	Date     string          `json:"date"`
	Rooms    []RoomStateItem `json:"rooms"`
	Occupied int             `json:"occupied"`
	Locked   int             `json:"locked"`
	Vacant   int             `json:"vacant"`
}

// RoomStateItem состояние номера на дату
type RoomStateItem struct {
	Name     string       `json:"name"`
	IsVIP    bool         `json:"isLarge"`
	Floor    string       `json:"floor"`
	Column   int          `json:"column"`
	Status   string       `json:"status"`
	LockedBy string       `json:"lockedBy,omitempty"`
	Booking  *BookingItem `json:"booking,omitempty"`
	Pets     []PetItem    `json:"pets,omitempty"`
}

// BookingItem краткие данные брони в ячейке карты
type BookingItem struct {
	ID         string `json:"id"`
	RoomNumber string `json:"roomNumber"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	Status     string `json:"status"`
}

// PetItem питомец в занятом номере
type PetItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getRoomBoard.Response) *BoardResponse {
	result := &BoardResponse{
		Date:     resp.Date.String(),
		Rooms:    make([]RoomStateItem, 0, len(resp.Rooms)),
		Occupied: resp.Occupied,
		Locked:   resp.Locked,
		Vacant:   resp.Vacant,
	}

	for _, rs := range resp.Rooms {
		item := RoomStateItem{
			Name:     rs.Room.Name,
			IsVIP:    rs.Room.IsVIP,
			Floor:    string(rs.Room.Floor),
			Column:   rs.Room.Column,
			Status:   string(rs.Kind),
			LockedBy: rs.LockedBy,
		}
		if rs.Booking != nil {
			item.Booking = &BookingItem{
				ID:         rs.Booking.ID,
				RoomNumber: rs.Booking.RoomNumber,
				CheckIn:    rs.Booking.CheckIn.String(),
				CheckOut:   rs.Booking.CheckOut.String(),
				Status:     string(rs.Booking.Status),
			}
		}
		for _, p := range rs.Pets {
			item.Pets = append(item.Pets, PetItem{
				ID:       p.ID,
				Name:     p.Name,
				Type:     string(p.Type),
				PhotoURL: p.PhotoURL,
			})
		}
		result.Rooms = append(result.Rooms, item)
	}

	return result
}
