package get_room_board

import (
	"context"
	"fmt"

	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/internal/service/availability"
)

// UseCase use case для карты номеров на дату
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	petRepo     PetRepository
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, roomRepo RoomRepository, petRepo PetRepository, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		petRepo:     petRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute строит состояние всех номеров на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetRoomBoard: date=%s", req.Date)

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetRoomBoard: empty date")
		return nil, fmt.Errorf("%w: %w: date is required", ErrInvalidInput, domain.ErrInvalidDate)
	}

	// 2. Получаем номера и бронирования
	rooms, err := uc.roomRepo.ListRooms(ctx)
	if err != nil {
		uc.logger.Error("GetRoomBoard: failed to get rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.AllBookings(ctx)
	if err != nil {
		uc.logger.Error("GetRoomBoard: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	board := availability.NewBoard(rooms, bookings)
	resp := &Response{Date: req.Date, Rooms: make([]RoomState, 0, len(rooms))}

	// 3. Состояние каждого номера
	for _, room := range rooms {
		if !domain.IsValidRoom(room.Name) {
			uc.logger.Warn("GetRoomBoard: skip unknown room %q", room.Name)
			continue
		}

		status, err := board.StatusOf(room.Name, req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}

		rs := RoomState{
			Room:     room,
			Kind:     status.Kind,
			Booking:  status.Booking,
			LockedBy: status.LockedBy,
		}

		switch status.Kind {
		case availability.KindOccupied:
			resp.Occupied++
			pets, err := uc.petRepo.GetPetsByIDs(ctx, status.Booking.PetIDs)
			if err != nil {
				uc.logger.Error("GetRoomBoard: failed to get pets for booking %s: %v", status.Booking.ID, err)
				return nil, fmt.Errorf("%w: failed to get pets: %v", ErrInternal, err)
			}
			rs.Pets = pets
		case availability.KindLocked:
			resp.Locked++
		case availability.KindVacant:
			resp.Vacant++
		}

		resp.Rooms = append(resp.Rooms, rs)
	}

	if uc.metrics != nil {
		uc.metrics.SetRoomsOccupied(resp.Occupied)
	}

	return resp, nil
}
