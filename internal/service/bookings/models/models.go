package models

import (
	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/pkg/types"
)

// Request модели

// ListBookingsRequest фильтр списка бронирований
type ListBookingsRequest struct {
	Month           string  // YYYY-MM, заезд или выезд попадает в месяц
	From            string  // YYYY-MM-DD, используется если Month пуст
	To              string  // YYYY-MM-DD включительно
	RoomNumber      *string // фильтр по номеру
	PetID           *string // фильтр по питомцу
	Status          *string // фильтр по статусу
	IncludeInactive bool    // включить отмененные и выехавшие
}

// UpdateBookingRequest частичное обновление. nil - поле не меняется
type UpdateBookingRequest struct {
	PetIDs     *[]string
	CheckIn    *string
	CheckOut   *string
	RoomNumber *string
	TotalPrice *float64
	Notes      *string
}

// HasPlacementChange true, если меняются номер или даты
func (r *UpdateBookingRequest) HasPlacementChange() bool {
	return r.CheckIn != nil || r.CheckOut != nil || r.RoomNumber != nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         string   `json:"id"`
	PetIDs     []string `json:"petIds"`
	CheckIn    string   `json:"checkIn"`
	CheckOut   string   `json:"checkOut"`
	Nights     int      `json:"nights"`
	Status     string   `json:"status"`
	RoomNumber string   `json:"roomNumber"`
	TotalPrice float64  `json:"totalPrice"`
	Notes      string   `json:"notes"`
}

// BookingListResponse список бронирований с итогом по выручке
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
	// Сумма totalPrice всех неотмененных броней из списка
	Revenue float64 `json:"revenue"`
}

// Конвертеры

// FromDomainBooking конвертирует domain модель в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:         b.ID,
		PetIDs:     append([]string{}, b.PetIDs...),
		CheckIn:    b.CheckIn.String(),
		CheckOut:   b.CheckOut.String(),
		Nights:     b.Nights(),
		Status:     string(b.Status),
		RoomNumber: b.RoomNumber,
		TotalPrice: b.TotalPrice,
		Notes:      b.Notes,
	}
}

// FromDomainBookingList конвертирует список и считает выручку
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]*BookingResponse, 0, len(bookings)),
		Total:    len(bookings),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, FromDomainBooking(b))
		if b.Status != domain.StatusCancelled {
			resp.Revenue += b.TotalPrice
		}
	}
	return resp
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		RoomNumber:      r.RoomNumber,
		PetID:           r.PetID,
		IncludeInactive: r.IncludeInactive,
	}

	switch {
	case r.Month != "":
		first, err := types.ParseMonth(r.Month)
		if err != nil {
			return filter, err
		}
		// последний день месяца включительно
		last := types.NewDate(first.Time().Year(), first.Time().Month()+1, 1).AddDays(-1)
		filter.From, filter.To = &first, &last
	default:
		if r.From != "" {
			from, err := types.ParseDate(r.From)
			if err != nil {
				return filter, err
			}
			filter.From = &from
		}
		if r.To != "" {
			to, err := types.ParseDate(r.To)
			if err != nil {
				return filter, err
			}
			filter.To = &to
		}
	}

	return filter, nil
}
