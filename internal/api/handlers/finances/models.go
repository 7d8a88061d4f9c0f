package finances

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/api/models"
	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/internal/service/ledger"
)

// WalletResponse HTTP response model
type WalletResponse struct {
	OwnerID   uuid.UUID                  `json:"owner_id"`
	Available float64                    `json:"available"`
	Held      float64                    `json:"held"`
	Total     float64                    `json:"total"`
	Movements []*models.MovementResponse `json:"movements"`
}

func FromBalance(b *ledger.Balance) *WalletResponse {
	resp := &WalletResponse{
		OwnerID:   b.OwnerID,
		Available: b.Available.Float(),
		Held:      b.Held.Float(),
		Total:     (b.Available + b.Held).Float(),
		Movements: make([]*models.MovementResponse, 0, len(b.Movements)),
	}
	for i := range b.Movements {
		resp.Movements = append(resp.Movements, models.FromMovement(&b.Movements[i]))
	}
	return resp
}

// AuditResponse HTTP response model
type AuditResponse struct {
	OwnerID           uuid.UUID `json:"owner_id"`
	StoredAvailable   float64   `json:"stored_available"`
	StoredHeld        float64   `json:"stored_held"`
	ReplayedAvailable float64   `json:"replayed_available"`
	ReplayedHeld      float64   `json:"replayed_held"`
	Movements         int       `json:"movements"`
	Consistent        bool      `json:"consistent"`
}

func FromAudit(a *ledger.Audit) *AuditResponse {
	return &AuditResponse{
		OwnerID:           a.OwnerID,
		StoredAvailable:   a.StoredAvailable.Float(),
		StoredHeld:        a.StoredHeld.Float(),
		ReplayedAvailable: a.ReplayedAvailable.Float(),
		ReplayedHeld:      a.ReplayedHeld.Float(),
		Movements:         a.Movements,
		Consistent:        a.Consistent,
	}
}

// ApproveWithdrawalRequest HTTP request model
type ApproveWithdrawalRequest struct {
	ProofURL string `json:"url_comprobante"`
}

func FromWithdrawals(list []*domain.WithdrawalRequest) []*models.WithdrawalResponse {
	resp := make([]*models.WithdrawalResponse, 0, len(list))
	for _, w := range list {
		resp = append(resp, models.FromWithdrawal(w))
	}
	return resp
}
