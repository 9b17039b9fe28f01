package dashboard

import (
	"context"
	"fmt"
	"math"

	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/internal/service/dashboard/models"
	"github.com/m04kA/PetHotelService/pkg/types"
)

// Service статистика отеля
type Service struct {
	bookingRepo   BookingRepository
	metrics       Metrics
	timeProvider  TimeProvider
	capacityRooms int
	logger        Logger
}

// NewService создает новый экземпляр сервиса. capacityRooms - знаменатель загрузки
func NewService(bookingRepo BookingRepository, metrics Metrics, capacityRooms int, logger Logger) *Service {
	if capacityRooms <= 0 {
		capacityRooms = domain.TotalRooms
	}
	return &Service{
		bookingRepo:   bookingRepo,
		metrics:       metrics,
		timeProvider:  &RealTimeProvider{},
		capacityRooms: capacityRooms,
		logger:        logger,
	}
}

// Stats считает показатели на дату (пустая строка - сегодня).
// Заселенными считаются брони в статусе checked_in, выручка - по дате заезда без отмененных
func (s *Service) Stats(ctx context.Context, rawDate string) (*models.StatsResponse, error) {
	today := types.DateOf(s.timeProvider.Now())
	if rawDate != "" {
		d, err := types.ParseDate(rawDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		today = d
	}

	bookings, err := s.bookingRepo.AllBookings(ctx)
	if err != nil {
		s.logger.Error("Stats: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	month := today.Month()
	prevMonth := today.FirstOfMonth().AddDays(-1).Month()

	resp := &models.StatsResponse{
		Date:  today.String(),
		Month: month,
	}

	for _, b := range bookings {
		if b.Status == domain.StatusCheckedIn {
			resp.Occupied++
		}
		if b.Status == domain.StatusPending {
			resp.PendingBookings++
		}
		if b.IsActive() {
			resp.ActiveBookings++
		}
		if b.CheckIn.Equal(today) {
			resp.CheckIns++
		}
		if b.CheckOut.Equal(today) {
			resp.CheckOuts++
		}

		if b.Status == domain.StatusCancelled {
			continue
		}
		switch b.CheckIn.Month() {
		case month:
			resp.Revenue += b.TotalPrice
		case prevMonth:
			resp.PrevRevenue += b.TotalPrice
		}
	}

	resp.RevenueGrowth = growth(resp.Revenue, resp.PrevRevenue)
	resp.OccupancyRate = occupancyRate(resp.Occupied, s.capacityRooms)

	if s.metrics != nil {
		s.metrics.SetRoomsOccupied(resp.Occupied)
	}

	return resp, nil
}

// growth прирост в процентах. При нулевой базе: 100 если есть выручка, иначе 0
func growth(current, prev float64) float64 {
	if prev == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - prev) / prev * 100
}

func occupancyRate(occupied, capacity int) int {
	rate := int(math.Round(float64(occupied) / float64(capacity) * 100))
	if rate > 100 {
		return 100
	}
	return rate
}
