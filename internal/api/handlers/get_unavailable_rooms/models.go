package get_unavailable_rooms

import (
	"net/http"

	getAvailableRooms "github.com/m04kA/PetHotelService/internal/usecase/get_available_rooms"
	"github.com/m04kA/PetHotelService/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	CheckIn     string       `json:"checkIn"`
	CheckOut    string       `json:"checkOut"`
	Unavailable []string     `json:"unavailable"`
	Rooms       []RoomOption `json:"rooms"`
}

// RoomOption номер в форме выбора
type RoomOption struct {
	Name        string   `json:"name"`
	IsVIP       bool     `json:"isLarge"`
	Floor       string   `json:"floor"`
	Partners    []string `json:"partners"`
	Available   bool     `json:"available"`
	Maintenance bool     `json:"maintenance"`
}

// ToUseCaseRequest разбирает checkIn/checkOut/excludeBookingId из query
func ToUseCaseRequest(r *http.Request) (*getAvailableRooms.Request, error) {
	q := r.URL.Query()

	checkIn, err := types.ParseDate(q.Get("checkIn"))
	if err != nil {
		return nil, err
	}
	checkOut, err := types.ParseDate(q.Get("checkOut"))
	if err != nil {
		return nil, err
	}

	return &getAvailableRooms.Request{
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		ExcludeBookingID: q.Get("excludeBookingId"),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableRooms.Response) *AvailabilityResponse {
	result := &AvailabilityResponse{
		CheckIn:     resp.CheckIn.String(),
		CheckOut:    resp.CheckOut.String(),
		Unavailable: resp.Unavailable,
		Rooms:       make([]RoomOption, 0, len(resp.Rooms)),
	}
	if result.Unavailable == nil {
		result.Unavailable = []string{}
	}
	for _, o := range resp.Rooms {
		result.Rooms = append(result.Rooms, RoomOption{
			Name:        o.Name,
			IsVIP:       o.IsVIP,
			Floor:       string(o.Floor),
			Partners:    o.Partners,
			Available:   o.Available,
			Maintenance: o.Maintenance,
		})
	}
	return result
}
