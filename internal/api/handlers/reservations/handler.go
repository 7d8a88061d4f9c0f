package reservations

import (
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/api/middleware"
	"github.com/m04kA/SMC-GarageService/internal/api/models"
)

const (
	msgInvalidReservation = "некорректный ID бронирования"
	msgMissingActor       = "пользователь не аутентифицирован"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Get GET /api/v1/reservations/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	reservationID, err := handlers.PathUUID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidReservation)
		return
	}

	// сервис сам проверит, что actor - участник или администратор
	res, err := h.service.Get(r.Context(), actor, reservationID)
	if err != nil {
		handlers.Fail(w, h.logger, fmt.Sprintf("GET /reservations/%s actor=%s", reservationID, actor.ID), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromReservation(res))
}

// List GET /api/v1/reservations?role=renter|owner
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	role := r.URL.Query().Get("role")
	list, err := h.service.List(r.Context(), actor.ID, role)
	if err != nil {
		handlers.Fail(w, h.logger, fmt.Sprintf("GET /reservations role=%s actor=%s", role, actor.ID), err)
		return
	}

	h.logger.Info("GET /reservations - %d reservations, role=%s, actor=%s", len(list), role, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, models.FromReservations(list))
}
