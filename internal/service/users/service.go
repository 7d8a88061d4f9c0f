// Package users covers accounts: registration, login, KYC documents and
// their approval by an operator.
package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-GarageService/internal/auth"
	"github.com/m04kA/SMC-GarageService/internal/domain"
	userRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/user"
)

// Service сервис пользователей
type Service struct {
	repo         UserRepository
	tokens       TokenIssuer
	bcryptCost   int
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает сервис пользователей
func NewService(repo UserRepository, tokens TokenIssuer, bcryptCost int, logger Logger) *Service {
	return &Service{
		repo:         repo,
		tokens:       tokens,
		bcryptCost:   bcryptCost,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Register создает неподтвержденный аккаунт и сразу выпускает токен
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if email == "" || req.Password == "" {
		return nil, ErrCredentialsRequired
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if len(req.Password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: hash password: %v", ErrInternal, err)
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         domain.RoleUser,
		IsVerified:   false,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Register: email %s already registered", email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: failed to create user: %v", err)
		return nil, fmt.Errorf("%w: create user: %v", ErrInternal, err)
	}

	s.logger.Info("Register: created user id=%s", created.ID)

	return s.authenticate(created)
}

// Login проверяет пароль и выпускает токен
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrCredentialsRequired
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email %s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: failed to get user: %v", err)
		return nil, fmt.Errorf("%w: get user: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login: wrong password for user id=%s", u.ID)
		return nil, ErrInvalidCredentials
	}

	return s.authenticate(u)
}

// SubmitKYC сохраняет ссылки на документы. Пользователь остается неподтвержденным
// до одобрения администратором.
func (s *Service) SubmitKYC(ctx context.Context, userID uuid.UUID, dniPhotoURL, selfieURL string) (*domain.User, error) {
	dniPhotoURL = strings.TrimSpace(dniPhotoURL)
	selfieURL = strings.TrimSpace(selfieURL)
	if dniPhotoURL == "" || selfieURL == "" {
		return nil, ErrKYCDocumentsRequired
	}

	if err := s.repo.UpdateKYC(ctx, userID, dniPhotoURL, selfieURL); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("SubmitKYC: failed to update user id=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: update kyc: %v", ErrInternal, err)
	}

	s.logger.Info("SubmitKYC: documents uploaded for user id=%s", userID)

	return s.get(ctx, userID)
}

// Approve отмечает пользователя как подтвержденного
func (s *Service) Approve(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	u, err := s.get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if u.IsVerified {
		s.logger.Warn("Approve: user id=%s is already verified", userID)
		return nil, ErrAlreadyVerified
	}

	if err := s.repo.SetVerified(ctx, userID); err != nil {
		s.logger.Error("Approve: failed to verify user id=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: set verified: %v", ErrInternal, err)
	}

	u.IsVerified = true
	s.logger.Info("Approve: user id=%s verified", userID)

	return u, nil
}

// Actor загружает актуальные роль и статус верификации для middleware
func (s *Service) Actor(ctx context.Context, userID uuid.UUID) (*auth.Actor, error) {
	u, err := s.get(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &auth.Actor{
		ID:       u.ID,
		Role:     u.Role,
		Verified: u.IsVerified,
	}, nil
}

func (s *Service) get(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("users: failed to get user id=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: get user: %v", ErrInternal, err)
	}
	return u, nil
}

func (s *Service) authenticate(u *domain.User) (*AuthResponse, error) {
	token, expiresAt, err := s.tokens.Issue(u.ID, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("users: failed to issue token for user id=%s: %v", u.ID, err)
		return nil, fmt.Errorf("%w: issue token: %v", ErrInternal, err)
	}

	return &AuthResponse{
		User:      u,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
