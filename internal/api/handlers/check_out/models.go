package check_out

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/api/models"
	checkOut "github.com/m04kA/SMC-GarageService/internal/usecase/check_out"
)

// EvidenceRequest HTTP request model
type EvidenceRequest struct {
	DateID   uuid.UUID `json:"id_fecha_reserva"`
	PhotoURL *string   `json:"url_foto,omitempty"`
	Comments *string   `json:"comentarios,omitempty"`
}

// CheckOutResponse HTTP response model. Movement есть, только когда
// бронирование завершилось этим check-out.
type CheckOutResponse struct {
	Reservation *models.ReservationResponse `json:"reservation"`
	Evidence    *models.EvidenceResponse    `json:"evidence"`
	Movement    *models.MovementResponse    `json:"movement,omitempty"`
}

func FromUseCaseResponse(resp *checkOut.Response) *CheckOutResponse {
	return &CheckOutResponse{
		Reservation: models.FromReservation(resp.Reservation),
		Evidence:    models.FromEvidence(resp.Evidence),
		Movement:    models.FromMovement(resp.Movement),
	}
}
