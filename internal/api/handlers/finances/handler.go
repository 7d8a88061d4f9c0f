package finances

import (
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/api/middleware"
	"github.com/m04kA/SMC-GarageService/internal/api/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidWithdrawal  = "некорректный ID заявки"
	msgInvalidUserID      = "некорректный ID пользователя"
	msgMissingActor       = "пользователь не аутентифицирован"
)

type Handler struct {
	service FinanceService
	logger  Logger
}

func NewHandler(service FinanceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Wallet GET /api/v1/finances/billetera
func (h *Handler) Wallet(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	balance, err := h.service.Wallet(r.Context(), actor.ID)
	if err != nil {
		handlers.Fail(w, h.logger, fmt.Sprintf("GET /finances/billetera owner=%s", actor.ID), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromBalance(balance))
}

// MyWithdrawals GET /api/v1/finances/billetera/retiros?estado=pending|processed
func (h *Handler) MyWithdrawals(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	status := r.URL.Query().Get("estado")
	list, err := h.service.ListWithdrawals(r.Context(), &actor.ID, &status)
	if err != nil {
		handlers.Fail(w, h.logger, fmt.Sprintf("GET /finances/billetera/retiros owner=%s", actor.ID), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromWithdrawals(list))
}

// AllWithdrawals GET /api/v1/finances/retiros?estado=pending|processed (admin)
func (h *Handler) AllWithdrawals(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("estado")
	list, err := h.service.ListWithdrawals(r.Context(), nil, &status)
	if err != nil {
		handlers.Fail(w, h.logger, "GET /finances/retiros", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromWithdrawals(list))
}

// ApproveWithdrawal POST /api/v1/finances/billetera/retiros/{id}/aprobar (admin)
func (h *Handler) ApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
	withdrawalID, err := handlers.PathUUID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidWithdrawal)
		return
	}

	var req ApproveWithdrawalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /finances/billetera/retiros/{id}/aprobar - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	withdrawal, err := h.service.ApproveWithdrawal(r.Context(), withdrawalID, req.ProofURL)
	if err != nil {
		handlers.Fail(w, h.logger, fmt.Sprintf("POST /finances/billetera/retiros/%s/aprobar", withdrawalID), err)
		return
	}

	h.logger.Info("POST /finances/billetera/retiros/{id}/aprobar - Withdrawal processed: withdrawal=%s, owner=%s",
		withdrawalID, withdrawal.OwnerID)
	handlers.RespondJSON(w, http.StatusOK, models.FromWithdrawal(withdrawal))
}

// Audit GET /api/v1/finances/billetera/{userId}/auditoria (admin)
func (h *Handler) Audit(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.PathUUID(r, "userId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	audit, err := h.service.Audit(r.Context(), userID)
	if err != nil {
		handlers.Fail(w, h.logger, fmt.Sprintf("GET /finances/billetera/%s/auditoria", userID), err)
		return
	}

	if !audit.Consistent {
		h.logger.Warn("GET /finances/billetera/{id}/auditoria - Wallet drift detected: owner=%s", userID)
	}
	handlers.RespondJSON(w, http.StatusOK, FromAudit(audit))
}
