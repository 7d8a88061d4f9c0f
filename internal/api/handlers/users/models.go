package users

import (
	"time"

	"github.com/m04kA/SMC-GarageService/internal/api/models"
	usersService "github.com/m04kA/SMC-GarageService/internal/service/users"
)

// RegisterRequest HTTP request model
type RegisterRequest struct {
	Email    string  `json:"correo"`
	Password string  `json:"password"`
	FullName *string `json:"nombre_completo,omitempty"`
}

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"correo"`
	Password string `json:"password"`
}

// KYCRequest HTTP request model
type KYCRequest struct {
	DNIPhotoURL string `json:"dni_foto_url"`
	SelfieURL   string `json:"selfie_url"`
}

// AuthResponse HTTP response model
type AuthResponse struct {
	User      *models.UserResponse `json:"user"`
	Token     string               `json:"token"`
	ExpiresAt string               `json:"expires_at"`
}

func FromAuthResponse(resp *usersService.AuthResponse) *AuthResponse {
	return &AuthResponse{
		User:      models.FromUser(resp.User),
		Token:     resp.Token,
		ExpiresAt: resp.ExpiresAt.Format(time.RFC3339),
	}
}
