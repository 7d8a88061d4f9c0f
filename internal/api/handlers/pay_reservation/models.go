package pay_reservation

import (
	"github.com/m04kA/SMC-GarageService/internal/api/models"
	payReservation "github.com/m04kA/SMC-GarageService/internal/usecase/pay_reservation"
)

// PayReservationRequest HTTP request model
type PayReservationRequest struct {
	Method        string  `json:"metodo"`
	ImageURL      *string `json:"url_imagen,omitempty"`
	TransactionID *string `json:"id_transaccion,omitempty"`
}

// PayReservationResponse HTTP response model
type PayReservationResponse struct {
	Reservation *models.ReservationResponse  `json:"reservation"`
	Proof       *models.PaymentProofResponse `json:"payment_proof"`
	Movement    *models.MovementResponse     `json:"movement"`
}

func FromUseCaseResponse(resp *payReservation.Response) *PayReservationResponse {
	return &PayReservationResponse{
		Reservation: models.FromReservation(resp.Reservation),
		Proof:       models.FromPaymentProof(resp.Proof),
		Movement:    models.FromMovement(resp.Movement),
	}
}
