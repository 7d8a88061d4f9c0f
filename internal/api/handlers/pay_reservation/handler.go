package pay_reservation

import (
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/api/middleware"
	payReservation "github.com/m04kA/SMC-GarageService/internal/usecase/pay_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidReservation = "некорректный ID бронирования"
	msgMissingActor       = "пользователь не аутентифицирован"
)

type Handler struct {
	useCase PayReservationUseCase
	logger  Logger
}

func NewHandler(useCase PayReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{id}/pagar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
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

	var req PayReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/pagar - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &payReservation.Request{
		ActorID:       actor.ID,
		ReservationID: reservationID,
		Method:        req.Method,
		ImageURL:      req.ImageURL,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		handlers.Fail(w, h.logger, fmt.Sprintf("POST /reservations/%s/pagar actor=%s", reservationID, actor.ID), err)
		return
	}

	h.logger.Info("POST /reservations/{id}/pagar - Reservation paid: reservation=%s, held=%s",
		reservationID, result.Movement.Amount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
