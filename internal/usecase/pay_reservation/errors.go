package pay_reservation

import (
	"fmt"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

var (
	// ErrMethodRequired возвращается, когда не указан способ оплаты
	ErrMethodRequired = fmt.Errorf("%w: payment method is required", domain.ErrValidation)

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = fmt.Errorf("%w: reservation not found", domain.ErrNotFound)

	// ErrNotRenter возвращается, когда оплачивает не арендатор
	ErrNotRenter = fmt.Errorf("%w: only the renter can pay the reservation", domain.ErrAuthorization)

	// ErrNotPending возвращается, когда бронирование уже не ждет оплаты
	ErrNotPending = fmt.Errorf("%w: reservation is not pending payment", domain.ErrConflict)

	// ErrConcurrentUpdate возвращается, когда параллельная транзакция изменила бронирование
	ErrConcurrentUpdate = fmt.Errorf("%w: reservation was updated concurrently", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: pay_reservation", domain.ErrInternal)
)
