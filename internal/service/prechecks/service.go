package prechecks

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/internal/infra/storage/state"
	"github.com/m04kA/PetHotelService/internal/service/prechecks/models"
	"github.com/m04kA/PetHotelService/pkg/types"
	"github.com/m04kA/PetHotelService/pkg/validator"
)

// Service сервис осмотров при заезде
type Service struct {
	preCheckRepo PreCheckRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса осмотров
func NewService(preCheckRepo PreCheckRepository, bookingRepo BookingRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		preCheckRepo: preCheckRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Save сохраняет (перезаписывает) осмотр питомца по брони.
// Бронь с назначенным номером переводится в checked_in
func (s *Service) Save(ctx context.Context, bookingID, petID string, req *models.SavePreCheckRequest) (*models.PreCheckResponse, error) {
	s.logger.Info("Save: pre-check booking=%s, pet=%s, weight=%.2f", bookingID, petID, req.Weight)

	// 1. Валидация входных данных
	if fieldErrors := validator.Validate(req); fieldErrors != nil {
		s.logger.Warn("Save: validation failed: %v", fieldErrors)
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, validator.Summary(fieldErrors))
	}

	date := types.DateOf(s.timeProvider.Now())
	if req.Date != "" {
		d, err := types.ParseDate(req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		date = d
	}

	var resp *models.PreCheckResponse

	// 2. Запись осмотра и смена статуса в одной транзакции
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetBookingByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, state.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
		}
		if !booking.HasPet(petID) {
			s.logger.Warn("Save: pet=%s is not in booking=%s", petID, bookingID)
			return ErrPetNotInBooking
		}
		if booking.IsTerminal() {
			s.logger.Warn("Save: booking=%s is %s", bookingID, booking.Status)
			return fmt.Errorf("%w: status %s", ErrBookingClosed, booking.Status)
		}

		record := req.ToDomain(bookingID, petID, date)
		if err := s.preCheckRepo.SavePreCheck(txCtx, record); err != nil {
			return fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
		}

		status := booking.Status
		if status != domain.StatusCheckedIn {
			if booking.HasRoom() {
				if err := s.bookingRepo.UpdateBookingStatus(txCtx, bookingID, domain.StatusCheckedIn); err != nil {
					return fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
				}
				status = domain.StatusCheckedIn
			} else {
				s.logger.Warn("Save: booking=%s has no room, status stays %s", bookingID, status)
			}
		}

		resp = models.FromDomainPreCheck(record)
		resp.BookingStatus = string(status)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Save: pre-check saved for booking=%s, pet=%s", bookingID, petID)
	return resp, nil
}

// Get осмотр питомца по брони
func (s *Service) Get(ctx context.Context, bookingID, petID string) (*models.PreCheckResponse, error) {
	record, err := s.preCheckRepo.GetPreCheck(ctx, bookingID, petID)
	if err != nil {
		if errors.Is(err, state.ErrPreCheckNotFound) {
			return nil, ErrPreCheckNotFound
		}
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainPreCheck(record), nil
}

// List осмотры всех питомцев брони
func (s *Service) List(ctx context.Context, bookingID string) ([]*models.PreCheckResponse, error) {
	records, err := s.preCheckRepo.ListPreChecks(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.PreCheckResponse, 0, len(records))
	for _, r := range records {
		result = append(result, models.FromDomainPreCheck(r))
	}
	return result, nil
}
