package report_dispute

import (
	"github.com/m04kA/SMC-GarageService/internal/api/models"
	reportDispute "github.com/m04kA/SMC-GarageService/internal/usecase/report_dispute"
)

// ReportDisputeRequest HTTP request model
type ReportDisputeRequest struct {
	Category    string `json:"tipo_problema"`
	Description string `json:"descripcion_urgente"`
}

// ReportDisputeResponse HTTP response model
type ReportDisputeResponse struct {
	Ticket      *models.TicketResponse      `json:"ticket"`
	Reservation *models.ReservationResponse `json:"reservation"`
}

func FromUseCaseResponse(resp *reportDispute.Response) *ReportDisputeResponse {
	return &ReportDisputeResponse{
		Ticket:      models.FromTicket(resp.Ticket),
		Reservation: models.FromReservation(resp.Reservation),
	}
}
