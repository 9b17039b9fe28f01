package update_booking

import "github.com/m04kA/PetHotelService/internal/service/bookings/models"

// UpdateBookingRequest HTTP request model. Отсутствующие поля не меняются
type UpdateBookingRequest struct {
	PetIDs     *[]string `json:"petIds,omitempty"`
	CheckIn    *string   `json:"checkIn,omitempty"`
	CheckOut   *string   `json:"checkOut,omitempty"`
	RoomNumber *string   `json:"roomNumber,omitempty"`
	TotalPrice *float64  `json:"totalPrice,omitempty"`
	Notes      *string   `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateBookingRequest) ToServiceRequest() *models.UpdateBookingRequest {
	return &models.UpdateBookingRequest{
		PetIDs:     r.PetIDs,
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		RoomNumber: r.RoomNumber,
		TotalPrice: r.TotalPrice,
		Notes:      r.Notes,
	}
}
