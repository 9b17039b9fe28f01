package get_room_schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/internal/service/availability"
	"github.com/m04kA/PetHotelService/pkg/types"
)

// UseCase use case для календарной сетки занятости номеров
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, roomRepo RoomRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		logger:      logger,
	}
}

// Execute строит сетку статусов номеров по дням
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetRoomSchedule: month=%q, period=%s..%s, rooms=%v", req.Month, req.From, req.To, req.Rooms)

	// 1. Валидация входных данных
	rng, err := resolveRange(req)
	if err != nil {
		uc.logger.Warn("GetRoomSchedule: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var rooms []string
	if len(req.Rooms) > 0 {
		for _, room := range req.Rooms {
			if err := domain.ValidateRoom(room); err != nil {
				uc.logger.Warn("GetRoomSchedule: %v", err)
				return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
			}
		}
		rooms = req.Rooms
	}

	// 2. Получаем номера и бронирования
	roomStates, err := uc.roomRepo.ListRooms(ctx)
	if err != nil {
		uc.logger.Error("GetRoomSchedule: failed to get rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.AllBookings(ctx)
	if err != nil {
		uc.logger.Error("GetRoomSchedule: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Строим сетку
	grid, err := availability.GridFor(rng, rooms, roomStates, bookings)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	resp := &Response{
		From:  rng.From,
		To:    rng.To,
		Dates: grid.Dates,
		Rows:  make([]Row, 0, len(grid.Rooms)),
	}
	for _, room := range grid.Rooms {
		statuses := grid.Row(room)
		row := Row{Room: room, Cells: make([]Cell, len(statuses))}
		for i, status := range statuses {
			cell := Cell{Date: grid.Dates[i], Kind: status.Kind, LockedBy: status.LockedBy}
			if status.Booking != nil {
				cell.BookingID = status.Booking.ID
				cell.IsStart = status.Booking.CheckIn.Equal(cell.Date) || i == 0
			}
			row.Cells[i] = cell
		}
		resp.Rows = append(resp.Rows, row)
	}

	return resp, nil
}

func resolveRange(req *Request) (availability.DateRange, error) {
	if req.Month != "" {
		first, err := types.ParseMonth(req.Month)
		if err != nil {
			return availability.DateRange{}, fmt.Errorf("%w: month: %v", domain.ErrInvalidDate, err)
		}
		return availability.MonthRange(first), nil
	}
	return availability.NewDateRange(req.From, req.To)
}
