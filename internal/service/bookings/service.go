package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/internal/infra/storage/state"
	"github.com/m04kA/PetHotelService/internal/service/bookings/models"
	"github.com/m04kA/PetHotelService/internal/service/conflicts"
	"github.com/m04kA/PetHotelService/pkg/types"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	petRepo     PetRepository
	roomRepo    RoomRepository
	txManager   TransactionManager
	metrics     Metrics
	logger      Logger

	blockMaintenance bool
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	petRepo PetRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
	blockMaintenance bool,
) *Service {
	return &Service{
		bookingRepo:      bookingRepo,
		petRepo:          petRepo,
		roomRepo:         roomRepo,
		txManager:        txManager,
		metrics:          metrics,
		logger:           logger,
		blockMaintenance: blockMaintenance,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования по фильтру и считает выручку.
// Для месяца в список попадает бронь, у которой заезд или выезд внутри месяца
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: month=%q, from=%q, to=%q, includeInactive=%v", req.Month, req.From, req.To, req.IncludeInactive)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %w: %v", ErrInvalidInput, domain.ErrInvalidDate, err)
	}

	var status *domain.BookingStatus
	if req.Status != nil {
		st, err := domain.ParseBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
		}
		status = &st
		// явный фильтр по неактивному статусу включает неактивные брони
		if !st.IsActive() {
			filter.IncludeInactive = true
		}
	}

	bookings, err := s.bookingRepo.ListBookings(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	if status != nil {
		filtered := bookings[:0]
		for _, b := range bookings {
			if b.Status == *status {
				filtered = append(filtered, b)
			}
		}
		bookings = filtered
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Update частично обновляет бронирование.
// Номер и даты нельзя менять у брони в конечном статусе; новое размещение
// проверяется на конфликты без учета самой брони
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking id=%s", id)

	var result *domain.Booking
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование
		booking, err := s.getBooking(txCtx, "Update", id)
		if err != nil {
			return err
		}

		// 2. Конечный статус: размещение не меняется
		if req.HasPlacementChange() && booking.IsTerminal() {
			s.logger.Warn("Update: booking id=%s is %s, placement is frozen", id, booking.Status)
			return fmt.Errorf("%w: status %s", domain.ErrTerminalStateViolation, booking.Status)
		}

		// 3. Применяем изменения
		if err := applyUpdate(booking, req); err != nil {
			s.logger.Warn("Update: invalid input for booking id=%s: %v", id, err)
			return err
		}

		// 4. Питомцы должны существовать
		if req.PetIDs != nil {
			if err := s.checkPets(txCtx, booking.PetIDs); err != nil {
				return err
			}
		}

		// 5. Проверяем размещение
		if req.HasPlacementChange() && booking.IsActive() && booking.HasRoom() {
			if err := s.checkPlacement(txCtx, booking); err != nil {
				return err
			}
		}

		// 6. Сохраняем
		if err := s.bookingRepo.UpdateBooking(txCtx, booking); err != nil {
			if errors.Is(err, state.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("Update: repository error for booking id=%s: %v", id, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		result = booking
		return nil
	})
	s.observe("update", err)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: successfully updated booking id=%s", id)
	return models.FromDomainBooking(result), nil
}

// SetStatus меняет статус бронирования.
// Из конечного статуса переходов нет; CheckedIn требует назначенного номера
func (s *Service) SetStatus(ctx context.Context, id string, rawStatus string) (*models.BookingResponse, error) {
	s.logger.Info("SetStatus: booking id=%s -> %s", id, rawStatus)

	next, err := domain.ParseBookingStatus(rawStatus)
	if err != nil {
		s.logger.Warn("SetStatus: invalid status=%s for booking id=%s", rawStatus, id)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	var result *domain.Booking
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, "SetStatus", id)
		if err != nil {
			return err
		}

		if !booking.Status.CanTransitionTo(next) {
			s.logger.Warn("SetStatus: transition %s -> %s is not allowed for booking id=%s", booking.Status, next, id)
			return fmt.Errorf("%w: %s -> %s", domain.ErrTerminalStateViolation, booking.Status, next)
		}
		if next == domain.StatusCheckedIn && !booking.HasRoom() {
			s.logger.Warn("SetStatus: booking id=%s has no room assigned", id)
			return fmt.Errorf("%w: %w: check-in requires an assigned room", ErrInvalidStatus, domain.ErrValidationFailed)
		}

		if err := s.bookingRepo.UpdateBookingStatus(txCtx, id, next); err != nil {
			if errors.Is(err, state.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("SetStatus: repository error for booking id=%s: %v", id, err)
			return fmt.Errorf("%w: SetStatus - repository error: %v", ErrInternal, err)
		}

		booking.Status = next
		result = booking
		return nil
	})
	s.observe("set_status", err)
	if err != nil {
		return nil, err
	}

	s.logger.Info("SetStatus: booking id=%s is now %s", id, next)
	return models.FromDomainBooking(result), nil
}

// Cancel отменяет бронирование. Номер и его пара сразу освобождаются
func (s *Service) Cancel(ctx context.Context, id string) error {
	s.logger.Info("Cancel: cancelling booking id=%s", id)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, "Cancel", id)
		if err != nil {
			return err
		}

		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", id, booking.Status)
			return ErrCannotCancel
		}

		if err := s.bookingRepo.UpdateBookingStatus(txCtx, id, domain.StatusCancelled); err != nil {
			s.logger.Error("Cancel: repository error for booking id=%s: %v", id, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	s.observe("cancel", err)
	if err != nil {
		return err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", id)
	return nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetBookingByID(ctx, id)
	if err != nil {
		if errors.Is(err, state.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

func (s *Service) checkPets(ctx context.Context, ids []string) error {
	pets, err := s.petRepo.GetPetsByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("%w: failed to get pets: %v", ErrInternal, err)
	}
	if len(pets) != len(ids) {
		return ErrPetNotFound
	}
	return nil
}

// checkPlacement проверяет номер на конфликты и обслуживание
func (s *Service) checkPlacement(ctx context.Context, booking *domain.Booking) error {
	if s.blockMaintenance {
		room, err := s.roomRepo.GetRoom(ctx, booking.RoomNumber)
		if err != nil && !errors.Is(err, state.ErrRoomNotFound) {
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}
		if room != nil && room.IsMaintenance() {
			return ErrRoomUnderMaintenance
		}
	}

	all, err := s.bookingRepo.AllBookings(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	if err := conflicts.CheckRoom(booking.RoomNumber, booking.CheckIn, booking.CheckOut, all, booking.ID); err != nil {
		s.logger.Warn("checkPlacement: booking id=%s: %v", booking.ID, err)
		if errors.Is(err, domain.ErrValidationFailed) {
			return fmt.Errorf("%w: %w", ErrRoomNotAvailable, err)
		}
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

func (s *Service) observe(op string, err error) {
	if s.metrics == nil {
		return
	}
	result := "ok"
	switch {
	case err == nil:
	case errors.Is(err, ErrRoomNotAvailable):
		result = "conflict"
	case errors.Is(err, ErrInternal):
		result = "error"
	default:
		result = "invalid"
	}
	s.metrics.IncBookingOperation(op, result)
}

// applyUpdate переносит заданные поля запроса в бронь и валидирует результат
func applyUpdate(booking *domain.Booking, req *models.UpdateBookingRequest) error {
	if req.PetIDs != nil {
		if err := domain.ValidatePetIDs(*req.PetIDs); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		booking.PetIDs = append([]string{}, *req.PetIDs...)
	}

	if req.CheckIn != nil {
		d, err := types.ParseDate(*req.CheckIn)
		if err != nil {
			return fmt.Errorf("%w: %w: checkIn: %v", ErrInvalidInput, domain.ErrInvalidDate, err)
		}
		booking.CheckIn = d
	}
	if req.CheckOut != nil {
		d, err := types.ParseDate(*req.CheckOut)
		if err != nil {
			return fmt.Errorf("%w: %w: checkOut: %v", ErrInvalidInput, domain.ErrInvalidDate, err)
		}
		booking.CheckOut = d
	}
	if err := conflicts.ValidateRange(booking.CheckIn, booking.CheckOut); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if req.RoomNumber != nil {
		room := *req.RoomNumber
		if room == "" {
			room = domain.UnassignedRoom
		}
		if room != domain.UnassignedRoom {
			if err := domain.ValidateRoom(room); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidInput, err)
			}
		} else if booking.Status == domain.StatusCheckedIn {
			return fmt.Errorf("%w: %w: checked-in booking must keep its room", ErrInvalidInput, domain.ErrValidationFailed)
		}
		booking.RoomNumber = room
	}

	if req.TotalPrice != nil {
		if *req.TotalPrice < 0 {
			return fmt.Errorf("%w: %w: totalPrice must not be negative", ErrInvalidInput, domain.ErrValidationFailed)
		}
		booking.TotalPrice = *req.TotalPrice
	}

	if req.Notes != nil {
		if len(*req.Notes) > domain.MaxNotesLength {
			return fmt.Errorf("%w: %w: notes too long", ErrInvalidInput, domain.ErrValidationFailed)
		}
		booking.Notes = *req.Notes
	}

	return nil
}
