package carelogs

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/internal/infra/storage/state"
	"github.com/m04kA/PetHotelService/internal/service/carelogs/models"
	"github.com/m04kA/PetHotelService/pkg/idgen"
	"github.com/m04kA/PetHotelService/pkg/types"
	"github.com/m04kA/PetHotelService/pkg/validator"
)

// Service сервис дневников ухода
type Service struct {
	careLogRepo CareLogRepository
	petRepo     PetRepository
	bookingRepo BookingRepository
	ids         IDGenerator
	logger      Logger
}

// NewService создает новый экземпляр сервиса дневников
func NewService(careLogRepo CareLogRepository, petRepo PetRepository, bookingRepo BookingRepository, ids IDGenerator, logger Logger) *Service {
	return &Service{
		careLogRepo: careLogRepo,
		petRepo:     petRepo,
		bookingRepo: bookingRepo,
		ids:         ids,
		logger:      logger,
	}
}

// Upsert сохраняет запись за день. Повторная запись за ту же дату заменяет предыдущую
func (s *Service) Upsert(ctx context.Context, petID, rawDate string, req *models.UpsertCareLogRequest) (*models.CareLogResponse, error) {
	s.logger.Info("Upsert: care log pet=%s, date=%s", petID, rawDate)

	date, err := types.ParseDate(rawDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if fieldErrors := validator.Validate(req); fieldErrors != nil {
		s.logger.Warn("Upsert: validation failed: %v", fieldErrors)
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, validator.Summary(fieldErrors))
	}

	if _, err := s.petRepo.GetPetByID(ctx, petID); err != nil {
		if errors.Is(err, state.ErrPetNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	stored, err := s.careLogRepo.UpsertCareLog(ctx, req.ToDomain(s.ids.NewID(idgen.PrefixCareLog), petID, date))
	if err != nil {
		s.logger.Error("Upsert: repository error: %v", err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCareLog(stored), nil
}

// ListByDate записи за дату
func (s *Service) ListByDate(ctx context.Context, rawDate string) ([]*models.CareLogResponse, error) {
	date, err := types.ParseDate(rawDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	logs, err := s.careLogRepo.ListCareLogsByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.CareLogResponse, 0, len(logs))
	for _, l := range logs {
		result = append(result, models.FromDomainCareLog(l))
	}
	return result, nil
}

// ListByPet история записей питомца
func (s *Service) ListByPet(ctx context.Context, petID string) ([]*models.CareLogResponse, error) {
	logs, err := s.careLogRepo.ListCareLogsByPet(ctx, petID)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByPet - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.CareLogResponse, 0, len(logs))
	for _, l := range logs {
		result = append(result, models.FromDomainCareLog(l))
	}
	return result, nil
}

// InHouse питомцы заселенных броней, у которых checkIn <= date <= checkOut.
// День выезда входит: в этот день питомец еще в отеле и ему ведется дневник
func (s *Service) InHouse(ctx context.Context, rawDate string) (*models.InHouseResponse, error) {
	date, err := types.ParseDate(rawDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.ListBookings(ctx, domain.BookingsFilter{})
	if err != nil {
		return nil, fmt.Errorf("%w: InHouse - repository error: %v", ErrInternal, err)
	}

	logs, err := s.careLogRepo.ListCareLogsByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: InHouse - repository error: %v", ErrInternal, err)
	}
	logByPet := make(map[string]*domain.DailyCareLog, len(logs))
	for _, l := range logs {
		logByPet[l.PetID] = l
	}

	resp := &models.InHouseResponse{Date: date.String(), Items: make([]models.InHouseItem, 0)}
	for _, b := range bookings {
		if b.Status != domain.StatusCheckedIn || !b.CoversInclusive(date) {
			continue
		}

		pets, err := s.petRepo.GetPetsByIDs(ctx, b.PetIDs)
		if err != nil {
			return nil, fmt.Errorf("%w: InHouse - repository error: %v", ErrInternal, err)
		}
		for _, p := range pets {
			item := models.InHouseItem{
				PetID:      p.ID,
				PetName:    p.Name,
				OwnerName:  p.OwnerName,
				BookingID:  b.ID,
				RoomNumber: b.RoomNumber,
				CheckIn:    b.CheckIn.String(),
				CheckOut:   b.CheckOut.String(),
			}
			if l, ok := logByPet[p.ID]; ok {
				item.Log = models.FromDomainCareLog(l)
			}
			resp.Items = append(resp.Items, item)
		}
	}

	return resp, nil
}
