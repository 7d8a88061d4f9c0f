package pay_reservation

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// Request модель запроса на оплату бронирования
type Request struct {
	ActorID       uuid.UUID
	ReservationID uuid.UUID
	Method        string
	ImageURL      *string
	TransactionID *string
}

// Response оплаченное бронирование, чек и движение в журнале
type Response struct {
	Reservation *domain.Reservation
	Proof       *domain.PaymentProof
	Movement    *domain.Movement
}
