package state

import (
	"context"

	"github.com/m04kA/PetHotelService/internal/domain"
)

// ListRooms номера в порядке хранения
func (r *Repository) ListRooms(ctx context.Context) ([]domain.Room, error) {
	unlock := r.rlock(ctx)
	defer unlock()

	result := make([]domain.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		result = append(result, cloneRoom(room))
	}
	return result, nil
}

// GetRoom номер по имени
func (r *Repository) GetRoom(ctx context.Context, name string) (*domain.Room, error) {
	unlock := r.rlock(ctx)
	defer unlock()

	for _, room := range r.rooms {
		if room.Name == name {
			c := cloneRoom(room)
			return &c, nil
		}
	}
	return nil, ErrRoomNotFound
}

// SetRoomStatus выставляет ручной статус номера
func (r *Repository) SetRoomStatus(ctx context.Context, name string, status domain.RoomStatus) error {
	unlock := r.lock(ctx)
	defer unlock()

	for i := range r.rooms {
		if r.rooms[i].Name == name {
			r.rooms[i].Status = status
			r.version++
			return nil
		}
	}
	return ErrRoomNotFound
}
