package check_out

import (
	"fmt"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = fmt.Errorf("%w: reservation not found", domain.ErrNotFound)

	// ErrDateNotFound возвращается, когда дата не принадлежит бронированию
	ErrDateNotFound = fmt.Errorf("%w: reservation date not found", domain.ErrNotFound)

	// ErrNotRenter возвращается, когда check-out делает не арендатор
	ErrNotRenter = fmt.Errorf("%w: only the renter can check out", domain.ErrAuthorization)

	// ErrNotInProgress возвращается, когда бронирование не в процессе (например, в споре)
	ErrNotInProgress = fmt.Errorf("%w: reservation is not in progress", domain.ErrConflict)

	// ErrNotCheckedIn возвращается, когда по дате не было check-in или уже был check-out
	ErrNotCheckedIn = fmt.Errorf("%w: reservation date is not checked in", domain.ErrConflict)

	// ErrConcurrentUpdate возвращается, когда параллельная транзакция изменила бронирование
	ErrConcurrentUpdate = fmt.Errorf("%w: reservation was updated concurrently", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: check_out", domain.ErrInternal)
)
