package pets

import (
	"context"

	"github.com/m04kA/PetHotelService/internal/service/pets/models"
)

type PetService interface {
	Create(ctx context.Context, req *models.PetRequest) (*models.PetResponse, error)
	QuickAdd(ctx context.Context, req *models.QuickAddRequest) (*models.PetResponse, error)
	GetByID(ctx context.Context, id string) (*models.PetResponse, error)
	Search(ctx context.Context, keyword string) (*models.PetListResponse, error)
	Update(ctx context.Context, id string, req *models.PetRequest) (*models.PetResponse, error)
	Delete(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
