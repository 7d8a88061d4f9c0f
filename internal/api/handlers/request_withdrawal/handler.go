package request_withdrawal

import (
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/api/middleware"
	"github.com/m04kA/SMC-GarageService/internal/domain"
	requestWithdrawal "github.com/m04kA/SMC-GarageService/internal/usecase/request_withdrawal"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingActor       = "пользователь не аутентифицирован"
)

type Handler struct {
	useCase RequestWithdrawalUseCase
	logger  Logger
}

func NewHandler(useCase RequestWithdrawalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/finances/billetera/retiros
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	var req RequestWithdrawalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /finances/billetera/retiros - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &requestWithdrawal.Request{
		OwnerID:       actor.ID,
		Amount:        domain.CentsFromFloat(req.Amount),
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
	})
	if err != nil {
		handlers.Fail(w, h.logger, fmt.Sprintf("POST /finances/billetera/retiros owner=%s amount=%.2f", actor.ID, req.Amount), err)
		return
	}

	h.logger.Info("POST /finances/billetera/retiros - Request created: withdrawal=%s, owner=%s",
		result.Withdrawal.ID, actor.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
