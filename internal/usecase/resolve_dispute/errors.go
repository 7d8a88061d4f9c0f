package resolve_dispute

import (
	"fmt"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

var (
	// ErrNotAdmin возвращается, когда решение принимает не администратор
	ErrNotAdmin = fmt.Errorf("%w: only an administrator can resolve disputes", domain.ErrAuthorization)

	// ErrInvalidDecision возвращается для неизвестного решения
	ErrInvalidDecision = fmt.Errorf("%w: decision must be favor_renter or favor_owner", domain.ErrValidation)

	// ErrTicketNotFound возвращается, когда тикет не найден
	ErrTicketNotFound = fmt.Errorf("%w: ticket not found", domain.ErrNotFound)

	// ErrTicketClosed возвращается, когда тикет уже закрыт
	ErrTicketClosed = fmt.Errorf("%w: ticket is already closed", domain.ErrConflict)

	// ErrReservationNotDisputed возвращается, когда бронирование тикета не в статусе disputed
	ErrReservationNotDisputed = fmt.Errorf("%w: reservation is not disputed", domain.ErrConflict)

	// ErrConcurrentUpdate возвращается, когда параллельная транзакция изменила тикет или бронирование
	ErrConcurrentUpdate = fmt.Errorf("%w: dispute was updated concurrently", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: resolve_dispute", domain.ErrInternal)
)
