package users

import (
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// MinPasswordLength минимальная длина пароля
const MinPasswordLength = 6

// RegisterRequest данные регистрации
type RegisterRequest struct {
	Email    string
	Password string
	FullName *string
}

// AuthResponse пользователь и выпущенный для него токен
type AuthResponse struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}
