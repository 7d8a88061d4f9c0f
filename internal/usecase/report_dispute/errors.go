package report_dispute

import (
	"fmt"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

var (
	// ErrCategoryRequired возвращается, когда не указан тип проблемы
	ErrCategoryRequired = fmt.Errorf("%w: problem category is required", domain.ErrValidation)

	// ErrDescriptionRequired возвращается, когда не указано описание
	ErrDescriptionRequired = fmt.Errorf("%w: problem description is required", domain.ErrValidation)

	// ErrDescriptionTooLong возвращается для слишком длинного описания
	ErrDescriptionTooLong = fmt.Errorf("%w: description is too long", domain.ErrValidation)

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = fmt.Errorf("%w: reservation not found", domain.ErrNotFound)

	// ErrNotParticipant возвращается, когда спор открывает посторонний
	ErrNotParticipant = fmt.Errorf("%w: only the renter or the garage owner can open a dispute", domain.ErrAuthorization)

	// ErrNotDisputable возвращается, когда по бронированию нет удерживаемых или выплаченных средств
	ErrNotDisputable = fmt.Errorf("%w: reservation cannot be disputed in its current state", domain.ErrConflict)

	// ErrDisputeExists возвращается, когда по бронированию уже открыт спор
	ErrDisputeExists = fmt.Errorf("%w: reservation already has an open dispute", domain.ErrConflict)

	// ErrConcurrentUpdate возвращается, когда параллельная транзакция изменила бронирование
	ErrConcurrentUpdate = fmt.Errorf("%w: reservation was updated concurrently", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: report_dispute", domain.ErrInternal)
)
