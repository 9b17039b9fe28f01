package prechecks

import (
	"context"

	"github.com/m04kA/PetHotelService/internal/service/prechecks/models"
)

type PreCheckService interface {
	Save(ctx context.Context, bookingID, petID string, req *models.SavePreCheckRequest) (*models.PreCheckResponse, error)
	Get(ctx context.Context, bookingID, petID string) (*models.PreCheckResponse, error)
	List(ctx context.Context, bookingID string) ([]*models.PreCheckResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
