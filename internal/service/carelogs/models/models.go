package models

import (
	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/pkg/types"
)

// UpsertCareLogRequest запись дневника за день
type UpsertCareLogRequest struct {
	FeedingStatus string `json:"feedingStatus" validate:"omitempty,oneof=finished leftovers low_appetite not_eaten"`
	LitterStatus  string `json:"litterStatus" validate:"omitempty,oneof=well_formed soft diarrhea none_yet"`
	MentalStatus  string `json:"mentalStatus" validate:"omitempty,oneof=full_energy quiet lazy nervous"`
	Mood          string `json:"mood" validate:"max=100"`
	Notes         string `json:"notes" validate:"max=2000"`
	PhotoURL      string `json:"photoUrl" validate:"omitempty,url"`
}

// CareLogResponse запись дневника
type CareLogResponse struct {
	ID            string `json:"id"`
	PetID         string `json:"petId"`
	Date          string `json:"date"`
	FeedingStatus string `json:"feedingStatus"`
	LitterStatus  string `json:"litterStatus"`
	MentalStatus  string `json:"mentalStatus"`
	Mood          string `json:"mood"`
	Notes         string `json:"notes"`
	PhotoURL      string `json:"photoUrl,omitempty"`
}

// InHouseItem питомец, проживающий в отеле на дату
type InHouseItem struct {
	PetID      string           `json:"petId"`
	PetName    string           `json:"petName"`
	OwnerName  string           `json:"ownerName"`
	BookingID  string           `json:"bookingId"`
	RoomNumber string           `json:"roomNumber"`
	CheckIn    string           `json:"checkIn"`
	CheckOut   string           `json:"checkOut"`
	Log        *CareLogResponse `json:"log,omitempty"` // nil - запись за день еще не сделана
}

// InHouseResponse список проживающих на дату
type InHouseResponse struct {
	Date  string        `json:"date"`
	Items []InHouseItem `json:"items"`
}

// ToDomain собирает domain модель
func (r *UpsertCareLogRequest) ToDomain(id, petID string, date types.Date) *domain.DailyCareLog {
	return &domain.DailyCareLog{
		ID:            id,
		PetID:         petID,
		Date:          date,
		FeedingStatus: r.FeedingStatus,
		LitterStatus:  r.LitterStatus,
		MentalStatus:  r.MentalStatus,
		Mood:          r.Mood,
		Notes:         r.Notes,
		PhotoURL:      r.PhotoURL,
	}
}

// FromDomainCareLog конвертирует domain модель в DTO
func FromDomainCareLog(l *domain.DailyCareLog) *CareLogResponse {
	return &CareLogResponse{
		ID:            l.ID,
		PetID:         l.PetID,
		Date:          l.Date.String(),
		FeedingStatus: l.FeedingStatus,
		LitterStatus:  l.LitterStatus,
		MentalStatus:  l.MentalStatus,
		Mood:          l.Mood,
		Notes:         l.Notes,
		PhotoURL:      l.PhotoURL,
	}
}
