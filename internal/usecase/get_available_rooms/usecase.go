package get_available_rooms

import (
	"context"
	"fmt"

	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/internal/service/conflicts"
)

// UseCase use case для подбора номеров на период проживания
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, roomRepo RoomRepository, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступных номеров
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableRooms: period=%s..%s, exclude=%q", req.CheckIn, req.CheckOut, req.ExcludeBookingID)

	// 1. Валидация входных данных
	if err := conflicts.ValidateRange(req.CheckIn, req.CheckOut); err != nil {
		uc.logger.Warn("GetAvailableRooms: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// 2. Получаем бронирования и номера
	bookings, err := uc.bookingRepo.AllBookings(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableRooms: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	rooms, err := uc.roomRepo.ListRooms(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableRooms: failed to get rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}

	// 3. Вычисляем занятые номера с учетом пар
	unavailable, err := conflicts.UnavailableRooms(req.CheckIn, req.CheckOut, bookings, req.ExcludeBookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	byName := make(map[string]domain.Room, len(rooms))
	for _, room := range rooms {
		byName[room.Name] = room
	}

	// 4. Формируем список в порядке реестра
	options := make([]RoomOption, 0, domain.TotalRooms)
	for _, name := range domain.AllRoomNames() {
		room := byName[name]
		options = append(options, RoomOption{
			Name:        name,
			IsVIP:       domain.IsVIPRoom(name),
			Floor:       room.Floor,
			Partners:    domain.PartnersOf(name),
			Available:   !unavailable.Has(name),
			Maintenance: room.IsMaintenance(),
		})
	}

	if uc.metrics != nil {
		outcome := "free"
		if len(unavailable) > 0 {
			outcome = "partial"
		}
		if len(unavailable) == domain.TotalRooms {
			outcome = "full"
		}
		uc.metrics.IncConflictCheck(outcome)
	}

	uc.logger.Info("GetAvailableRooms: %d of %d rooms unavailable", len(unavailable), domain.TotalRooms)

	return &Response{
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		Rooms:       options,
		Unavailable: unavailable.Sorted(),
	}, nil
}
