package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	usersService "github.com/m04kA/SMC-GarageService/internal/service/users"
)

type UserService interface {
	Register(ctx context.Context, req *usersService.RegisterRequest) (*usersService.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*usersService.AuthResponse, error)
	SubmitKYC(ctx context.Context, userID uuid.UUID, dniPhotoURL, selfieURL string) (*domain.User, error)
	Approve(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
