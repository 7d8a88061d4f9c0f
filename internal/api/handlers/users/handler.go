package users

import (
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/api/middleware"
	"github.com/m04kA/SMC-GarageService/internal/api/models"
	usersService "github.com/m04kA/SMC-GarageService/internal/service/users"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidUserID      = "некорректный ID пользователя"
	msgMissingActor       = "пользователь не аутентифицирован"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register POST /api/v1/users/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), &usersService.RegisterRequest{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		handlers.Fail(w, h.logger, "POST /users/register", err)
		return
	}

	h.logger.Info("POST /users/register - User registered: user=%s", result.User.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromAuthResponse(result))
}

// Login POST /api/v1/users/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handlers.Fail(w, h.logger, "POST /users/login", err)
		return
	}

	h.logger.Info("POST /users/login - User logged in: user=%s", result.User.ID)
	handlers.RespondJSON(w, http.StatusOK, FromAuthResponse(result))
}

// SubmitKYC POST /api/v1/users/kyc
func (h *Handler) SubmitKYC(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	var req KYCRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users/kyc - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.service.SubmitKYC(r.Context(), actor.ID, req.DNIPhotoURL, req.SelfieURL)
	if err != nil {
		handlers.Fail(w, h.logger, fmt.Sprintf("POST /users/kyc user=%s", actor.ID), err)
		return
	}

	h.logger.Info("POST /users/kyc - Documents submitted: user=%s", actor.ID)
	handlers.RespondJSON(w, http.StatusOK, models.FromUser(user))
}

// Approve POST /api/v1/users/approve/{userId}
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.PathUUID(r, "userId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	user, err := h.service.Approve(r.Context(), userID)
	if err != nil {
		handlers.Fail(w, h.logger, fmt.Sprintf("POST /users/approve/%s", userID), err)
		return
	}

	h.logger.Info("POST /users/approve/{id} - User verified: user=%s", userID)
	handlers.RespondJSON(w, http.StatusOK, models.FromUser(user))
}
