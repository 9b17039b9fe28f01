package pets

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/internal/infra/storage/state"
	"github.com/m04kA/PetHotelService/internal/service/pets/models"
	"github.com/m04kA/PetHotelService/pkg/idgen"
	"github.com/m04kA/PetHotelService/pkg/validator"
)

// Service сервис карточек питомцев
type Service struct {
	petRepo     PetRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	ids         IDGenerator
	logger      Logger
}

// NewService создает новый экземпляр сервиса питомцев
func NewService(petRepo PetRepository, bookingRepo BookingRepository, txManager TransactionManager, ids IDGenerator, logger Logger) *Service {
	return &Service{
		petRepo:     petRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		ids:         ids,
		logger:      logger,
	}
}

// Create создает карточку питомца
func (s *Service) Create(ctx context.Context, req *models.PetRequest) (*models.PetResponse, error) {
	s.logger.Info("Create: creating pet name=%q", req.Name)

	if fieldErrors := validator.Validate(req); fieldErrors != nil {
		s.logger.Warn("Create: validation failed: %v", fieldErrors)
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, validator.Summary(fieldErrors))
	}

	pet, err := s.petRepo.CreatePet(ctx, req.ToDomain(s.ids.NewID(idgen.PrefixPet)))
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created pet id=%s", pet.ID)
	return models.FromDomainPet(pet), nil
}

// QuickAdd создает карточку только по имени (кошка, порода и владелец по умолчанию)
func (s *Service) QuickAdd(ctx context.Context, req *models.QuickAddRequest) (*models.PetResponse, error) {
	if fieldErrors := validator.Validate(req); fieldErrors != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, validator.Summary(fieldErrors))
	}

	return s.Create(ctx, &models.PetRequest{
		Name:      req.Name,
		Type:      string(domain.PetCat),
		Gender:    string(domain.GenderUnknown),
		Breed:     models.QuickAddBreed,
		OwnerName: models.QuickAddOwner,
	})
}

// GetByID получает карточку по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.PetResponse, error) {
	pet, err := s.petRepo.GetPetByID(ctx, id)
	if err != nil {
		if errors.Is(err, state.ErrPetNotFound) {
			s.logger.Warn("GetByID: pet id=%s not found", id)
			return nil, ErrPetNotFound
		}
		s.logger.Error("GetByID: repository error for pet id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainPet(pet), nil
}

// Search список питомцев, отфильтрованный по ключевому слову (пустое - все)
func (s *Service) Search(ctx context.Context, keyword string) (*models.PetListResponse, error) {
	pets, err := s.petRepo.ListPets(ctx)
	if err != nil {
		s.logger.Error("Search: repository error: %v", err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	result := make([]*domain.Pet, 0, len(pets))
	for _, p := range pets {
		if p.MatchesKeyword(keyword) {
			result = append(result, p)
		}
	}
	return models.FromDomainPetList(result), nil
}

// Update полностью заменяет данные карточки
func (s *Service) Update(ctx context.Context, id string, req *models.PetRequest) (*models.PetResponse, error) {
	s.logger.Info("Update: updating pet id=%s", id)

	if fieldErrors := validator.Validate(req); fieldErrors != nil {
		s.logger.Warn("Update: validation failed: %v", fieldErrors)
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, validator.Summary(fieldErrors))
	}

	pet := req.ToDomain(id)
	if err := s.petRepo.UpdatePet(ctx, pet); err != nil {
		if errors.Is(err, state.ErrPetNotFound) {
			return nil, ErrPetNotFound
		}
		s.logger.Error("Update: repository error for pet id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPet(pet), nil
}

// Delete удаляет карточку. Питомца с незавершенной бронью удалить нельзя,
// иначе бронь ссылалась бы на несуществующую карточку
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting pet id=%s", id)

	return s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		bookings, err := s.bookingRepo.AllBookings(txCtx)
		if err != nil {
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
		for _, b := range bookings {
			if !b.IsTerminal() && b.HasPet(id) {
				s.logger.Warn("Delete: pet id=%s is referenced by booking id=%s (%s)", id, b.ID, b.Status)
				return fmt.Errorf("%w: booking %s", ErrPetInUse, b.ID)
			}
		}

		if err := s.petRepo.DeletePet(txCtx, id); err != nil {
			if errors.Is(err, state.ErrPetNotFound) {
				return ErrPetNotFound
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
		return nil
	})
}
