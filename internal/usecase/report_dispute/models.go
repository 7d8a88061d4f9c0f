package report_dispute

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// Request модель запроса на открытие спора
type Request struct {
	ActorID       uuid.UUID
	ReservationID uuid.UUID
	Category      string
	Description   string
}

// Response открытый тикет и бронирование в статусе disputed
type Response struct {
	Ticket      *domain.DisputeTicket
	Reservation *domain.Reservation
}
