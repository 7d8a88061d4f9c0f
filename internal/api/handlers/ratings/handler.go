package ratings

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/api/middleware"
	"github.com/m04kA/SMC-GarageService/internal/api/models"
	"github.com/m04kA/SMC-GarageService/internal/domain"
	ratingsService "github.com/m04kA/SMC-GarageService/internal/service/ratings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidReservation = "некорректный ID бронирования"
	msgInvalidTarget      = "некорректный объект оценки"
	msgMissingActor       = "пользователь не аутентифицирован"
)

type Handler struct {
	service RatingService
	logger  Logger
}

func NewHandler(service RatingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Rate POST /api/v1/support/reservas/{id}/calificar
func (h *Handler) Rate(w http.ResponseWriter, r *http.Request) {
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

	var req RateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /support/reservas/{id}/calificar - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	rating, err := h.service.Rate(r.Context(), &ratingsService.Request{
		ActorID:       actor.ID,
		ReservationID: reservationID,
		TargetType:    domain.RatingTarget(strings.ToLower(req.TargetType)),
		TargetID:      req.TargetID,
		Score:         req.Score,
		Comment:       req.Comment,
	})
	if err != nil {
		handlers.Fail(w, h.logger, fmt.Sprintf("POST /support/reservas/%s/calificar actor=%s", reservationID, actor.ID), err)
		return
	}

	h.logger.Info("POST /support/reservas/{id}/calificar - Rating saved: rating=%s, target=%s", rating.ID, rating.TargetID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromRating(rating))
}

// List GET /api/v1/ratings/{targetType}/{targetId}
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	targetType := domain.RatingTarget(mux.Vars(r)["targetType"])
	if targetType != domain.RatingTargetUser && targetType != domain.RatingTargetGarage {
		handlers.RespondBadRequest(w, msgInvalidTarget)
		return
	}

	targetID, err := handlers.PathUUID(r, "targetId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTarget)
		return
	}

	list, err := h.service.List(r.Context(), targetType, targetID)
	if err != nil {
		handlers.Fail(w, h.logger, fmt.Sprintf("GET /ratings/%s/%s", targetType, targetID), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromRatings(list))
}
