package check_out

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// Request модель запроса check-out по дате бронирования
type Request struct {
	ActorID       uuid.UUID
	ReservationID uuid.UUID
	DateID        uuid.UUID
	PhotoURL      *string
	Comments      *string
}

// Response бронирование после check-out. Movement заполнен, если бронирование
// завершено и выплата переведена в available.
type Response struct {
	Reservation *domain.Reservation
	Evidence    *domain.Evidence
	Movement    *domain.Movement
}
