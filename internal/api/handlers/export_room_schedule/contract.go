package export_room_schedule

import (
	"context"

	"github.com/m04kA/PetHotelService/internal/service/export"
)

type ExportService interface {
	MonthlyBoard(ctx context.Context, month string) (*export.File, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
