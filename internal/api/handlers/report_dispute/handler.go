package report_dispute

import (
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/api/middleware"
	reportDispute "github.com/m04kA/SMC-GarageService/internal/usecase/report_dispute"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidReservation = "некорректный ID бронирования"
	msgMissingActor       = "пользователь не аутентифицирован"
)

type Handler struct {
	useCase ReportDisputeUseCase
	logger  Logger
}

func NewHandler(useCase ReportDisputeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/support/reservas/{id}/disputa
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

	var req ReportDisputeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /support/reservas/{id}/disputa - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &reportDispute.Request{
		ActorID:       actor.ID,
		ReservationID: reservationID,
		Category:      req.Category,
		Description:   req.Description,
	})
	if err != nil {
		handlers.Fail(w, h.logger, fmt.Sprintf("POST /support/reservas/%s/disputa actor=%s", reservationID, actor.ID), err)
		return
	}

	h.logger.Info("POST /support/reservas/{id}/disputa - Ticket opened: ticket=%s, reservation=%s",
		result.Ticket.ID, reservationID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
