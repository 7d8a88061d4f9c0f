package check_in

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/api/models"
	checkIn "github.com/m04kA/SMC-GarageService/internal/usecase/check_in"
)

// EvidenceRequest HTTP request model
type EvidenceRequest struct {
	DateID   uuid.UUID `json:"id_fecha_reserva"`
	PhotoURL *string   `json:"url_foto,omitempty"`
	Comments *string   `json:"comentarios,omitempty"`
}

// CheckInResponse HTTP response model
type CheckInResponse struct {
	Reservation *models.ReservationResponse `json:"reservation"`
	Evidence    *models.EvidenceResponse    `json:"evidence"`
}

func FromUseCaseResponse(resp *checkIn.Response) *CheckInResponse {
	return &CheckInResponse{
		Reservation: models.FromReservation(resp.Reservation),
		Evidence:    models.FromEvidence(resp.Evidence),
	}
}
