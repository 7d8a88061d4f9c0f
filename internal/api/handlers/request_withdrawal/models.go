package request_withdrawal

import (
	"github.com/m04kA/SMC-GarageService/internal/api/models"
	requestWithdrawal "github.com/m04kA/SMC-GarageService/internal/usecase/request_withdrawal"
)

// RequestWithdrawalRequest HTTP request model. monto в основных единицах (90.50)
type RequestWithdrawalRequest struct {
	Amount        float64 `json:"monto"`
	BankName      string  `json:"banco_destino"`
	AccountNumber string  `json:"cuenta_destino"`
}

// RequestWithdrawalResponse HTTP response model
type RequestWithdrawalResponse struct {
	Withdrawal *models.WithdrawalResponse `json:"withdrawal"`
	Available  float64                    `json:"available"`
	Held       float64                    `json:"held"`
}

func FromUseCaseResponse(resp *requestWithdrawal.Response) *RequestWithdrawalResponse {
	return &RequestWithdrawalResponse{
		Withdrawal: models.FromWithdrawal(resp.Withdrawal),
		Available:  resp.Wallet.Available.Float(),
		Held:       resp.Wallet.Held.Float(),
	}
}
