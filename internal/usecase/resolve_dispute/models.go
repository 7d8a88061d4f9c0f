package resolve_dispute

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// Request модель запроса на разрешение спора
type Request struct {
	ActorID  uuid.UUID
	IsAdmin  bool
	TicketID uuid.UUID
	Decision domain.DisputeDecision
	Notes    *string
}

// Response закрытый тикет, итоговое бронирование и движение по кошельку.
// Movement равен nil, если решение не затрагивает ledger.
type Response struct {
	Ticket      *domain.DisputeTicket
	Reservation *domain.Reservation
	Movement    *domain.Movement
}
