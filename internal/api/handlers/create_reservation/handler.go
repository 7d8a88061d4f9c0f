package create_reservation

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/api/middleware"
	"github.com/m04kA/SMC-GarageService/internal/api/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingGarageID    = "id_garaje обязателен"
	msgMissingActor       = "пользователь не аутентифицирован"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.GarageID == uuid.Nil {
		handlers.RespondBadRequest(w, msgMissingGarageID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(actor.ID, handlers.ClientIP(r)))
	if err != nil {
		handlers.Fail(w, h.logger, fmt.Sprintf("POST /reservations renter=%s garage=%s", actor.ID, req.GarageID), err)
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation=%s, renter=%s, total=%s",
		result.ID, actor.ID, result.Total)
	handlers.RespondJSON(w, http.StatusCreated, models.FromReservation(result))
}
