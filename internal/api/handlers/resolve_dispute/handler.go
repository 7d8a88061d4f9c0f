package resolve_dispute

import (
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/api/middleware"
	resolveDispute "github.com/m04kA/SMC-GarageService/internal/usecase/resolve_dispute"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTicket      = "некорректный ID тикета"
	msgMissingActor       = "пользователь не аутентифицирован"
)

type Handler struct {
	useCase ResolveDisputeUseCase
	logger  Logger
}

func NewHandler(useCase ResolveDisputeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/support/tickets/{id}/resolver
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	ticketID, err := handlers.PathUUID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTicket)
		return
	}

	var req ResolveDisputeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /support/tickets/{id}/resolver - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &resolveDispute.Request{
		ActorID:  actor.ID,
		IsAdmin:  actor.IsAdmin(),
		TicketID: ticketID,
		Decision: req.ToDecision(),
		Notes:    req.Notes,
	})
	if err != nil {
		handlers.Fail(w, h.logger, fmt.Sprintf("POST /support/tickets/%s/resolver admin=%s", ticketID, actor.ID), err)
		return
	}

	h.logger.Info("POST /support/tickets/{id}/resolver - Ticket closed: ticket=%s, status=%s, reservation=%s",
		ticketID, result.Ticket.Status, result.Reservation.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
