package check_in

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// Request модель запроса check-in по дате бронирования
type Request struct {
	ActorID       uuid.UUID
	ReservationID uuid.UUID
	DateID        uuid.UUID
	PhotoURL      *string
	Comments      *string
}

// Response бронирование после check-in и сохраненная фотофиксация
type Response struct {
	Reservation *domain.Reservation
	Evidence    *domain.Evidence
}
