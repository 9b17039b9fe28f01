package get_room_board

import (
	"context"

	getRoomBoard "github.com/m04kA/PetHotelService/internal/usecase/get_room_board"
)

type GetRoomBoardUseCase interface {
	Execute(ctx context.Context, req *getRoomBoard.Request) (*getRoomBoard.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
