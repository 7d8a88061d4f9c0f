package request_withdrawal

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// Request модель заявки на вывод средств
type Request struct {
	OwnerID       uuid.UUID
	Amount        domain.Cents
	BankName      string
	AccountNumber string
}

// Response заявка и кошелек после списания
type Response struct {
	Withdrawal *domain.WithdrawalRequest
	Wallet     *domain.Wallet
	Movement   *domain.Movement
}
