package create_booking

import (
	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/internal/service/bookings/models"
	createBooking "github.com/m04kA/PetHotelService/internal/usecase/create_booking"
	"github.com/m04kA/PetHotelService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PetIDs     []string `json:"petIds"`
	CheckIn    string   `json:"checkIn"`  // "2025-06-01"
	CheckOut   string   `json:"checkOut"` // "2025-06-05"
	RoomNumber string   `json:"roomNumber,omitempty"`
	Status     string   `json:"status,omitempty"`
	TotalPrice float64  `json:"totalPrice"`
	Notes      string   `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	checkIn, err := types.ParseDate(r.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := types.ParseDate(r.CheckOut)
	if err != nil {
		return nil, err
	}

	var status domain.BookingStatus
	if r.Status != "" {
		status, err = domain.ParseBookingStatus(r.Status)
		if err != nil {
			return nil, err
		}
	}

	return &createBooking.Request{
		PetIDs:     r.PetIDs,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		RoomNumber: r.RoomNumber,
		Status:     status,
		TotalPrice: r.TotalPrice,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *models.BookingResponse {
	return models.FromDomainBooking(resp.Booking)
}
