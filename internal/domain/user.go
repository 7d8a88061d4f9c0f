package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role of an account
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User marketplace account. The same account may act as renter and as owner.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FullName     *string
	Role         Role
	IsVerified   bool
	DNIPhotoURL  *string
	SelfieURL    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin returns true for operator accounts
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasKYCDocuments returns true if both identity documents were uploaded
func (u *User) HasKYCDocuments() bool {
	return u.DNIPhotoURL != nil && u.SelfieURL != nil
}
