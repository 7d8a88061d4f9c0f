package resolve_dispute

import (
	"github.com/m04kA/SMC-GarageService/internal/api/models"
	"github.com/m04kA/SMC-GarageService/internal/domain"
	resolveDispute "github.com/m04kA/SMC-GarageService/internal/usecase/resolve_dispute"
)

// Значения решения, принятые в первой версии API
const (
	legacyFavorRenter = "CERRADO_A_FAVOR_VENDEDOR"
	legacyFavorOwner  = "CERRADO_A_FAVOR_DUENO"
)

// ResolveDisputeRequest HTTP request model
type ResolveDisputeRequest struct {
	Decision string  `json:"decision"` // favor_renter | favor_owner
	Notes    *string `json:"notas,omitempty"`
}

// ToDecision приводит решение к значению домена
func (r *ResolveDisputeRequest) ToDecision() domain.DisputeDecision {
	switch r.Decision {
	case legacyFavorRenter:
		return domain.DecisionFavorRenter
	case legacyFavorOwner:
		return domain.DecisionFavorOwner
	default:
		return domain.DisputeDecision(r.Decision)
	}
}

// ResolveDisputeResponse HTTP response model
type ResolveDisputeResponse struct {
	Ticket      *models.TicketResponse      `json:"ticket"`
	Reservation *models.ReservationResponse `json:"reservation"`
	Movement    *models.MovementResponse    `json:"movement,omitempty"`
}

func FromUseCaseResponse(resp *resolveDispute.Response) *ResolveDisputeResponse {
	return &ResolveDisputeResponse{
		Ticket:      models.FromTicket(resp.Ticket),
		Reservation: models.FromReservation(resp.Reservation),
		Movement:    models.FromMovement(resp.Movement),
	}
}
