package state

import (
	"context"
	"fmt"

	"github.com/m04kA/PetHotelService/internal/domain"
)

// CreatePet сохраняет нового питомца
func (r *Repository) CreatePet(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	if pet.ID == "" {
		return nil, fmt.Errorf("%w: CreatePet - empty id", ErrInvalidRecord)
	}

	unlock := r.lock(ctx)
	defer unlock()

	if r.findPet(pet.ID) >= 0 {
		return nil, fmt.Errorf("%w: CreatePet - id=%s", ErrAlreadyExists, pet.ID)
	}

	stored := *pet
	r.pets = append(r.pets, &stored)
	r.version++

	result := stored
	return &result, nil
}

// GetPetByID получает питомца по ID
func (r *Repository) GetPetByID(ctx context.Context, id string) (*domain.Pet, error) {
	unlock := r.rlock(ctx)
	defer unlock()

	idx := r.findPet(id)
	if idx < 0 {
		return nil, ErrPetNotFound
	}
	pet := *r.pets[idx]
	return &pet, nil
}

// GetPetsByIDs возвращает найденных питомцев в порядке ids, отсутствующие пропускаются
func (r *Repository) GetPetsByIDs(ctx context.Context, ids []string) ([]*domain.Pet, error) {
	unlock := r.rlock(ctx)
	defer unlock()

	result := make([]*domain.Pet, 0, len(ids))
	for _, id := range ids {
		if idx := r.findPet(id); idx >= 0 {
			pet := *r.pets[idx]
			result = append(result, &pet)
		}
	}
	return result, nil
}

// ListPets все питомцы в порядке добавления
func (r *Repository) ListPets(ctx context.Context) ([]*domain.Pet, error) {
	unlock := r.rlock(ctx)
	defer unlock()

	result := make([]*domain.Pet, 0, len(r.pets))
	for _, p := range r.pets {
		pet := *p
		result = append(result, &pet)
	}
	return result, nil
}

// UpdatePet заменяет карточку питомца
func (r *Repository) UpdatePet(ctx context.Context, pet *domain.Pet) error {
	unlock := r.lock(ctx)
	defer unlock()

	idx := r.findPet(pet.ID)
	if idx < 0 {
		return ErrPetNotFound
	}

	stored := *pet
	r.pets[idx] = &stored
	r.version++
	return nil
}

// DeletePet удаляет питомца. Проверку ссылок из бронирований делает сервис
func (r *Repository) DeletePet(ctx context.Context, id string) error {
	unlock := r.lock(ctx)
	defer unlock()

	idx := r.findPet(id)
	if idx < 0 {
		return ErrPetNotFound
	}

	r.pets = append(r.pets[:idx], r.pets[idx+1:]...)
	r.version++
	return nil
}

func (r *Repository) findPet(id string) int {
	for i, p := range r.pets {
		if p.ID == id {
			return i
		}
	}
	return -1
}
