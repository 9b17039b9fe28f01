package domain

import "github.com/m04kA/PetHotelService/pkg/types"

// PreCheckRecord осмотр питомца при заезде. Один на пару (бронирование, питомец)
type PreCheckRecord struct {
	BookingID     string     `json:"bookingId"`
	PetID         string     `json:"petId"`
	Date          types.Date `json:"date"`
	Weight        float64    `json:"weight"`                // кг, > 0
	Temperature   string     `json:"temperature,omitempty"` // опционально
	MentalStatus  string     `json:"mentalStatus"`
	SkinStatus    string     `json:"skinStatus"`
	EarStatus     string     `json:"earStatus"`
	EyeNoseStatus string     `json:"eyeNoseStatus"`
	TeethStatus   string     `json:"teethStatus"`
	LimbStatus    string     `json:"limbStatus"`
	Belongings    string     `json:"belongings"`
	StaffNotes    string     `json:"staffNotes"`
	AISummary     string     `json:"aiSummary,omitempty"`
}

// Key ключ уникальности записи
func (r *PreCheckRecord) Key() string {
	return r.BookingID + "/" + r.PetID
}

// DailyCareLog дневник ухода. Одна запись на пару (питомец, дата)
type DailyCareLog struct {
	ID            string     `json:"id"`
	PetID         string     `json:"petId"`
	Date          types.Date `json:"date"`
	FeedingStatus string     `json:"feedingStatus"`
	LitterStatus  string     `json:"litterStatus"`
	MentalStatus  string     `json:"mentalStatus"`
	Mood          string     `json:"mood"`
	Notes         string     `json:"notes"`
	PhotoURL      string     `json:"photoUrl,omitempty"`
}

// Key ключ уникальности записи
func (l *DailyCareLog) Key() string {
	return l.PetID + "/" + l.Date.String()
}

// Допустимые значения полей осмотра
var (
	PreCheckMentalStatuses  = []string{"energetic", "calm", "nervous", "fearful"}
	PreCheckSkinStatuses    = []string{"healthy", "swollen", "wounded", "parasites"}
	PreCheckEarStatuses     = []string{"clean", "odor", "inflamed", "waxy"}
	PreCheckEyeNoseStatuses = []string{"normal", "discharge", "sneezing"}
	PreCheckTeethStatuses   = []string{"healthy", "tartar", "gum_swelling", "odor"}
	PreCheckLimbStatuses    = []string{"normal", "long_nails", "paw_pad_issue", "gait_issue"}
)

// Допустимые значения полей дневника
var (
	CareFeedingStatuses = []string{"finished", "leftovers", "low_appetite", "not_eaten"}
	CareLitterStatuses  = []string{"well_formed", "soft", "diarrhea", "none_yet"}
	CareMentalStatuses  = []string{"full_energy", "quiet", "lazy", "nervous"}
)
