package ledger

import (
	"fmt"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

var (
	// ErrInvalidAmount возвращается для суммы <= 0
	ErrInvalidAmount = fmt.Errorf("%w: amount must be positive", domain.ErrValidation)

	// ErrInsufficientFunds возвращается, когда доступного баланса не хватает
	ErrInsufficientFunds = fmt.Errorf("%w: available balance is too low", domain.ErrInsufficientFunds)

	// ErrHeldMismatch возвращается, когда в held нет суммы, которую нужно снять:
	// журнал и баланс разошлись
	ErrHeldMismatch = fmt.Errorf("%w: held balance does not cover the reservation payout", domain.ErrInternal)

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = fmt.Errorf("%w: ledger", domain.ErrInternal)
)
