package set_room_maintenance

import (
	"context"

	"github.com/m04kA/PetHotelService/internal/service/rooms/models"
)

type RoomService interface {
	SetMaintenance(ctx context.Context, name string, on bool) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
