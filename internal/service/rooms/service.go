package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/internal/infra/storage/state"
	"github.com/m04kA/PetHotelService/internal/service/rooms/models"
)

// Service сервис номеров: список и ручной статус обслуживания
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса номеров
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// List возвращает все номера
func (s *Service) List(ctx context.Context) (*models.RoomListResponse, error) {
	rooms, err := s.roomRepo.ListRooms(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.RoomListResponse{Rooms: make([]models.RoomResponse, 0, len(rooms))}
	for i := range rooms {
		resp.Rooms = append(resp.Rooms, models.FromDomainRoom(&rooms[i]))
	}
	return resp, nil
}

// SetMaintenance переводит номер на обслуживание или возвращает в работу.
// На бронирования не влияет: занятость считается только по броням
func (s *Service) SetMaintenance(ctx context.Context, name string, on bool) (*models.RoomResponse, error) {
	s.logger.Info("SetMaintenance: room=%s, maintenance=%v", name, on)

	if !domain.IsValidRoom(name) {
		s.logger.Warn("SetMaintenance: unknown room %q", name)
		return nil, ErrRoomNotFound
	}

	status := domain.RoomVacant
	if on {
		status = domain.RoomMaintenance
	}

	if err := s.roomRepo.SetRoomStatus(ctx, name, status); err != nil {
		if errors.Is(err, state.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("SetMaintenance: repository error for room=%s: %v", name, err)
		return nil, fmt.Errorf("%w: SetMaintenance - repository error: %v", ErrInternal, err)
	}

	room, err := s.roomRepo.GetRoom(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%w: SetMaintenance - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainRoom(room)
	return &resp, nil
}
