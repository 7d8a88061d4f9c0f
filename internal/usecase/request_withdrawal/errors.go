package request_withdrawal

import (
	"fmt"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

var (
	// ErrInvalidAmount возвращается для суммы <= 0
	ErrInvalidAmount = fmt.Errorf("%w: amount must be positive", domain.ErrValidation)

	// ErrBankDetailsRequired возвращается, когда не указаны реквизиты
	ErrBankDetailsRequired = fmt.Errorf("%w: bank name and account number are required", domain.ErrValidation)

	// ErrConcurrentUpdate возвращается, когда параллельная транзакция изменила кошелек
	ErrConcurrentUpdate = fmt.Errorf("%w: wallet was updated concurrently", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: request_withdrawal", domain.ErrInternal)
)
