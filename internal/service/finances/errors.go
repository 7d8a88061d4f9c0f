package finances

import (
	"fmt"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

var (
	// ErrProofRequired возвращается, когда не передана ссылка на подтверждение выплаты
	ErrProofRequired = fmt.Errorf("%w: payout proof url is required", domain.ErrValidation)

	// ErrInvalidStatus возвращается для неизвестного статуса в фильтре
	ErrInvalidStatus = fmt.Errorf("%w: unknown withdrawal status", domain.ErrValidation)

	// ErrWithdrawalNotFound возвращается, когда заявка не найдена
	ErrWithdrawalNotFound = fmt.Errorf("%w: withdrawal request not found", domain.ErrNotFound)

	// ErrAlreadyProcessed возвращается, когда заявка уже не в pending
	ErrAlreadyProcessed = fmt.Errorf("%w: withdrawal request is already processed", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = fmt.Errorf("%w: finances", domain.ErrInternal)
)
