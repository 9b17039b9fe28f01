package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/internal/infra/storage/state"
	"github.com/m04kA/PetHotelService/pkg/idgen"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	petRepo     PetRepository
	roomRepo    RoomRepository
	txManager   TransactionManager
	ids         IDGenerator
	metrics     Metrics
	logger      Logger

	blockMaintenance bool
}

// NewUseCase создает новый экземпляр use case.
// blockMaintenance запрещает назначать номер, переведенный на обслуживание
func NewUseCase(
	bookingRepo BookingRepository,
	petRepo PetRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	ids IDGenerator,
	metrics Metrics,
	logger Logger,
	blockMaintenance bool,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		petRepo:          petRepo,
		roomRepo:         roomRepo,
		txManager:        txManager,
		ids:              ids,
		metrics:          metrics,
		logger:           logger,
		blockMaintenance: blockMaintenance,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка конфликта и запись выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: pets=%v, room=%q, period=%s..%s", req.PetIDs, req.RoomNumber, req.CheckIn, req.CheckOut)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.observe("invalid")
		return nil, err
	}

	// 2. Проверяем существование питомцев
	pets, err := uc.petRepo.GetPetsByIDs(ctx, req.PetIDs)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get pets: %v", err)
		uc.observe("error")
		return nil, fmt.Errorf("%w: failed to get pets: %v", ErrInternal, err)
	}
	if len(pets) != len(req.PetIDs) {
		uc.logger.Warn("CreateBooking: found %d of %d pets", len(pets), len(req.PetIDs))
		uc.observe("invalid")
		return nil, ErrPetNotFound
	}

	status := req.Status
	if status == "" {
		status = domain.StatusPending
	}
	room := req.RoomNumber
	if room == "" {
		room = domain.UnassignedRoom
	}

	var result *domain.Booking

	// 3. Проверка конфликта и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if hasRoom(room) {
			// 3.1. Номер на обслуживании
			if uc.blockMaintenance {
				r, err := uc.roomRepo.GetRoom(txCtx, room)
				if err != nil && !errors.Is(err, state.ErrRoomNotFound) {
					uc.logger.Error("CreateBooking: failed to get room %s: %v", room, err)
					return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
				}
				if r != nil && r.IsMaintenance() {
					uc.logger.Warn("CreateBooking: room %s is under maintenance", room)
					return ErrRoomUnderMaintenance
				}
			}

			// 3.2. Пересечения с активными бронями номера и его пары
			bookings, err := uc.bookingRepo.AllBookings(txCtx)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
				return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
			}
			if err := checkRoomAvailable(req, bookings); err != nil {
				uc.logger.Warn("CreateBooking: %v", err)
				return err
			}
		}

		// 3.3. Сохраняем бронирование
		booking := &domain.Booking{
			ID:         uc.ids.NewID(idgen.PrefixBooking),
			PetIDs:     append([]string{}, req.PetIDs...),
			CheckIn:    req.CheckIn,
			CheckOut:   req.CheckOut,
			Status:     status,
			RoomNumber: room,
			TotalPrice: req.TotalPrice,
			Notes:      req.Notes,
		}

		created, err := uc.bookingRepo.CreateBooking(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrRoomNotAvailable):
			uc.observe("conflict")
		case errors.Is(err, ErrInternal):
			uc.observe("error")
		default:
			uc.observe("invalid")
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)
	uc.observe("ok")

	return &Response{
		Booking: result,
		Nights:  result.Nights(),
	}, nil
}

func (uc *UseCase) observe(result string) {
	if uc.metrics != nil {
		uc.metrics.IncBookingOperation("create", result)
	}
}
