package garages

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	garagesService "github.com/m04kA/SMC-GarageService/internal/service/garages"
)

type GarageService interface {
	Create(ctx context.Context, req *garagesService.CreateRequest) (*domain.Garage, error)
	Get(ctx context.Context, garageID uuid.UUID) (*garagesService.Details, error)
	ListMine(ctx context.Context, ownerID uuid.UUID) ([]*domain.Garage, error)
	SetSchedule(ctx context.Context, req *garagesService.ScheduleRequest) (*domain.WeeklySchedule, error)
	AddService(ctx context.Context, req *garagesService.ServiceRequest) (*domain.ExtraService, error)
	BlockDate(ctx context.Context, req *garagesService.BlackoutRequest) (*domain.BlackoutDate, error)
	AddImage(ctx context.Context, req *garagesService.ImageRequest) (*domain.GarageImage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
