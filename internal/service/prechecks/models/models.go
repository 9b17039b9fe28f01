package models

import (
	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/pkg/types"
)

// SavePreCheckRequest данные осмотра при заезде
type SavePreCheckRequest struct {
	Date          string  `json:"date" validate:"omitempty,date"` // пусто - сегодня
	Weight        float64 `json:"weight" validate:"required,gt=0,lte=200"`
	Temperature   string  `json:"temperature" validate:"max=10"`
	MentalStatus  string  `json:"mentalStatus" validate:"omitempty,oneof=energetic calm nervous fearful"`
	SkinStatus    string  `json:"skinStatus" validate:"omitempty,oneof=healthy swollen wounded parasites"`
	EarStatus     string  `json:"earStatus" validate:"omitempty,oneof=clean odor inflamed waxy"`
	EyeNoseStatus string  `json:"eyeNoseStatus" validate:"omitempty,oneof=normal discharge sneezing"`
	TeethStatus   string  `json:"teethStatus" validate:"omitempty,oneof=healthy tartar gum_swelling odor"`
	LimbStatus    string  `json:"limbStatus" validate:"omitempty,oneof=normal long_nails paw_pad_issue gait_issue"`
	Belongings    string  `json:"belongings" validate:"max=1000"`
	StaffNotes    string  `json:"staffNotes" validate:"max=1000"`
	AISummary     string  `json:"aiSummary" validate:"max=2000"`
}

// PreCheckResponse осмотр и итоговый статус брони
type PreCheckResponse struct {
	BookingID     string  `json:"bookingId"`
	PetID         string  `json:"petId"`
	Date          string  `json:"date"`
	Weight        float64 `json:"weight"`
	Temperature   string  `json:"temperature,omitempty"`
	MentalStatus  string  `json:"mentalStatus"`
	SkinStatus    string  `json:"skinStatus"`
	EarStatus     string  `json:"earStatus"`
	EyeNoseStatus string  `json:"eyeNoseStatus"`
	TeethStatus   string  `json:"teethStatus"`
	LimbStatus    string  `json:"limbStatus"`
	Belongings    string  `json:"belongings"`
	StaffNotes    string  `json:"staffNotes"`
	AISummary     string  `json:"aiSummary,omitempty"`
	BookingStatus string  `json:"bookingStatus,omitempty"`
}

// ToDomain собирает domain модель
func (r *SavePreCheckRequest) ToDomain(bookingID, petID string, date types.Date) *domain.PreCheckRecord {
	return &domain.PreCheckRecord{
		BookingID:     bookingID,
		PetID:         petID,
		Date:          date,
		Weight:        r.Weight,
		Temperature:   r.Temperature,
		MentalStatus:  r.MentalStatus,
		SkinStatus:    r.SkinStatus,
		EarStatus:     r.EarStatus,
		EyeNoseStatus: r.EyeNoseStatus,
		TeethStatus:   r.TeethStatus,
		LimbStatus:    r.LimbStatus,
		Belongings:    r.Belongings,
		StaffNotes:    r.StaffNotes,
		AISummary:     r.AISummary,
	}
}

// FromDomainPreCheck конвертирует domain модель в DTO
func FromDomainPreCheck(r *domain.PreCheckRecord) *PreCheckResponse {
	return &PreCheckResponse{
		BookingID:     r.BookingID,
		PetID:         r.PetID,
		Date:          r.Date.String(),
		Weight:        r.Weight,
		Temperature:   r.Temperature,
		MentalStatus:  r.MentalStatus,
		SkinStatus:    r.SkinStatus,
		EarStatus:     r.EarStatus,
		EyeNoseStatus: r.EyeNoseStatus,
		TeethStatus:   r.TeethStatus,
		LimbStatus:    r.LimbStatus,
		Belongings:    r.Belongings,
		StaffNotes:    r.StaffNotes,
		AISummary:     r.AISummary,
	}
}
