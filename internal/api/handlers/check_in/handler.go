package check_in

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/api/middleware"
	checkIn "github.com/m04kA/SMC-GarageService/internal/usecase/check_in"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidReservation = "некорректный ID бронирования"
	msgMissingDateID      = "id_fecha_reserva обязателен"
	msgMissingActor       = "пользователь не аутентифицирован"
)

type Handler struct {
	useCase CheckInUseCase
	logger  Logger
}

func NewHandler(useCase CheckInUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/operations/{reservationId}/check-in
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	reservationID, err := handlers.PathUUID(r, "reservationId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidReservation)
		return
	}

	var req EvidenceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /operations/{id}/check-in - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.DateID == uuid.Nil {
		handlers.RespondBadRequest(w, msgMissingDateID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkIn.Request{
		ActorID:       actor.ID,
		ReservationID: reservationID,
		DateID:        req.DateID,
		PhotoURL:      req.PhotoURL,
		Comments:      req.Comments,
	})
	if err != nil {
		handlers.Fail(w, h.logger, fmt.Sprintf("POST /operations/%s/check-in date=%s", reservationID, req.DateID), err)
		return
	}

	h.logger.Info("POST /operations/{id}/check-in - Done: reservation=%s, date=%s, status=%s",
		reservationID, req.DateID, result.Reservation.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
