package data

import (
	"context"

	"github.com/m04kA/PetHotelService/internal/service/snapshot/models"
)

type SnapshotService interface {
	Export(ctx context.Context) ([]byte, error)
	ExportBase64(ctx context.Context) (*models.ExportBase64Response, error)
	Import(ctx context.Context, raw []byte) (*models.DocumentSummary, error)
	Push(ctx context.Context, syncID string) (*models.SyncResponse, error)
	Pull(ctx context.Context, syncID string) (*models.SyncResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
