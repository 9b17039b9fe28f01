package domain

import "strings"

// PetType вид питомца
type PetType string

const (
	PetCat   PetType = "cat"
	PetOther PetType = "other"
)

// PetGender пол питомца
type PetGender string

const (
	GenderMale    PetGender = "male"
	GenderFemale  PetGender = "female"
	GenderUnknown PetGender = "unknown"
)

// Pet карточка питомца и владельца
type Pet struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       PetType   `json:"type"`
	Gender     PetGender `json:"gender"`
	Breed      string    `json:"breed"`
	Age        int       `json:"age"`
	ChipNumber string    `json:"chipNumber"`

	// Владелец и экстренные контакты
	OwnerName             string `json:"ownerName"`
	OwnerPhone            string `json:"ownerPhone"`
	EmergencyContactName  string `json:"emergencyContactName"`
	EmergencyContactPhone string `json:"emergencyContactPhone"`
	FamiliarHospital      string `json:"familiarHospital"`

	// Уход
	MedicalNotes string `json:"medicalNotes"`
	DietaryNeeds string `json:"dietaryNeeds"`
	PhotoURL     string `json:"photoUrl"`
	LitterType   string `json:"litterType"`
	FeedingHabit string `json:"feedingHabit"`
	Allergens    string `json:"allergens"`
}

// MatchesKeyword поиск без учета регистра по имени, владельцу, чипу, породе,
// аллергенам, медицинским заметкам и питанию
func (p *Pet) MatchesKeyword(keyword string) bool {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return true
	}
	fields := []string{
		p.Name,
		p.OwnerName,
		p.ChipNumber,
		p.Breed,
		p.Allergens,
		p.MedicalNotes,
		p.DietaryNeeds,
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), keyword) {
			return true
		}
	}
	return false
}
