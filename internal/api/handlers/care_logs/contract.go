package care_logs

import (
	"context"

	"github.com/m04kA/PetHotelService/internal/service/carelogs/models"
)

type CareLogService interface {
	Upsert(ctx context.Context, petID, rawDate string, req *models.UpsertCareLogRequest) (*models.CareLogResponse, error)
	ListByDate(ctx context.Context, rawDate string) ([]*models.CareLogResponse, error)
	ListByPet(ctx context.Context, petID string) ([]*models.CareLogResponse, error)
	InHouse(ctx context.Context, rawDate string) (*models.InHouseResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
