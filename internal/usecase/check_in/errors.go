package check_in

import (
	"fmt"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = fmt.Errorf("%w: reservation not found", domain.ErrNotFound)

	// ErrDateNotFound возвращается, когда дата не принадлежит бронированию
	ErrDateNotFound = fmt.Errorf("%w: reservation date not found", domain.ErrNotFound)

	// ErrNotRenter возвращается, когда check-in делает не арендатор
	ErrNotRenter = fmt.Errorf("%w: only the renter can check in", domain.ErrAuthorization)

	// ErrNotPaid возвращается, когда бронирование не оплачено или уже закрыто
	ErrNotPaid = fmt.Errorf("%w: reservation must be paid or in progress to check in", domain.ErrConflict)

	// ErrAlreadyCheckedIn возвращается, когда по дате уже был check-in
	ErrAlreadyCheckedIn = fmt.Errorf("%w: reservation date is already checked in", domain.ErrConflict)

	// ErrConcurrentUpdate возвращается, когда параллельная транзакция изменила бронирование
	ErrConcurrentUpdate = fmt.Errorf("%w: reservation was updated concurrently", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: check_in", domain.ErrInternal)
)
