package models

import "github.com/m04kA/PetHotelService/internal/domain"

// Значения по умолчанию для быстрого создания карточки из формы брони
const (
	QuickAddBreed = "米克斯"
	QuickAddOwner = "快速預約建立"
)

// PetRequest данные карточки питомца (создание и полное обновление)
type PetRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	Type       string `json:"type" validate:"required,pet_type"`
	Gender     string `json:"gender" validate:"omitempty,pet_gender"`
	Breed      string `json:"breed" validate:"max=100"`
	Age        int    `json:"age" validate:"gte=0,lte=40"`
	ChipNumber string `json:"chipNumber" validate:"max=50"`

	OwnerName             string `json:"ownerName" validate:"max=100"`
	OwnerPhone            string `json:"ownerPhone" validate:"max=30"`
	EmergencyContactName  string `json:"emergencyContactName" validate:"max=100"`
	EmergencyContactPhone string `json:"emergencyContactPhone" validate:"max=30"`
	FamiliarHospital      string `json:"familiarHospital" validate:"max=200"`

	MedicalNotes string `json:"medicalNotes" validate:"max=1000"`
	DietaryNeeds string `json:"dietaryNeeds" validate:"max=1000"`
	PhotoURL     string `json:"photoUrl" validate:"omitempty,url"`
	LitterType   string `json:"litterType" validate:"max=100"`
	FeedingHabit string `json:"feedingHabit" validate:"max=500"`
	Allergens    string `json:"allergens" validate:"max=500"`
}

// QuickAddRequest быстрое создание по имени
type QuickAddRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// PetResponse карточка питомца
type PetResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Gender     string `json:"gender"`
	Breed      string `json:"breed"`
	Age        int    `json:"age"`
	ChipNumber string `json:"chipNumber"`

	OwnerName             string `json:"ownerName"`
	OwnerPhone            string `json:"ownerPhone"`
	EmergencyContactName  string `json:"emergencyContactName"`
	EmergencyContactPhone string `json:"emergencyContactPhone"`
	FamiliarHospital      string `json:"familiarHospital"`

	MedicalNotes string `json:"medicalNotes"`
	DietaryNeeds string `json:"dietaryNeeds"`
	PhotoURL     string `json:"photoUrl"`
	LitterType   string `json:"litterType"`
	FeedingHabit string `json:"feedingHabit"`
	Allergens    string `json:"allergens"`
}

// PetListResponse список питомцев
type PetListResponse struct {
	Pets  []*PetResponse `json:"pets"`
	Total int            `json:"total"`
}

// ToDomain собирает domain модель
func (r *PetRequest) ToDomain(id string) *domain.Pet {
	gender := domain.PetGender(r.Gender)
	if gender == "" {
		gender = domain.GenderUnknown
	}
	return &domain.Pet{
		ID:                    id,
		Name:                  r.Name,
		Type:                  domain.PetType(r.Type),
		Gender:                gender,
		Breed:                 r.Breed,
		Age:                   r.Age,
		ChipNumber:            r.ChipNumber,
		OwnerName:             r.OwnerName,
		OwnerPhone:            r.OwnerPhone,
		EmergencyContactName:  r.EmergencyContactName,
		EmergencyContactPhone: r.EmergencyContactPhone,
		FamiliarHospital:      r.FamiliarHospital,
		MedicalNotes:          r.MedicalNotes,
		DietaryNeeds:          r.DietaryNeeds,
		PhotoURL:              r.PhotoURL,
		LitterType:            r.LitterType,
		FeedingHabit:          r.FeedingHabit,
		Allergens:             r.Allergens,
	}
}

// FromDomainPet конвертирует domain модель в DTO
func FromDomainPet(p *domain.Pet) *PetResponse {
	return &PetResponse{
		ID:                    p.ID,
		Name:                  p.Name,
		Type:                  string(p.Type),
		Gender:                string(p.Gender),
		Breed:                 p.Breed,
		Age:                   p.Age,
		ChipNumber:            p.ChipNumber,
		OwnerName:             p.OwnerName,
		OwnerPhone:            p.OwnerPhone,
		EmergencyContactName:  p.EmergencyContactName,
		EmergencyContactPhone: p.EmergencyContactPhone,
		FamiliarHospital:      p.FamiliarHospital,
		MedicalNotes:          p.MedicalNotes,
		DietaryNeeds:          p.DietaryNeeds,
		PhotoURL:              p.PhotoURL,
		LitterType:            p.LitterType,
		FeedingHabit:          p.FeedingHabit,
		Allergens:             p.Allergens,
	}
}

// FromDomainPetList конвертирует список
func FromDomainPetList(pets []*domain.Pet) *PetListResponse {
	resp := &PetListResponse{Pets: make([]*PetResponse, 0, len(pets)), Total: len(pets)}
	for _, p := range pets {
		resp.Pets = append(resp.Pets, FromDomainPet(p))
	}
	return resp
}
