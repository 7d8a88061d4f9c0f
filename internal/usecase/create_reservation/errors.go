package create_reservation

import (
	"fmt"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

var (
	// ErrWaiverRequired возвращается, когда арендатор не принял условия ответственности
	ErrWaiverRequired = fmt.Errorf("%w: liability waiver must be accepted", domain.ErrValidation)

	// ErrNoDates возвращается, когда не передано ни одной даты
	ErrNoDates = fmt.Errorf("%w: at least one date with start and end time is required", domain.ErrValidation)

	// ErrInvalidDate возвращается для даты не в формате YYYY-MM-DD
	ErrInvalidDate = fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)

	// ErrInvalidTime возвращается для времени не в формате HH:MM
	ErrInvalidTime = fmt.Errorf("%w: time must be HH:MM", domain.ErrValidation)

	// ErrInvalidWindow возвращается, когда конец окна не позже начала
	ErrInvalidWindow = fmt.Errorf("%w: end time must be after start time", domain.ErrValidation)

	// ErrOverlappingDates возвращается, когда окна одной даты в запросе пересекаются
	ErrOverlappingDates = fmt.Errorf("%w: requested windows overlap each other", domain.ErrValidation)

	// ErrOwnGarage возвращается при попытке забронировать свой гараж
	ErrOwnGarage = fmt.Errorf("%w: owners cannot book their own garage", domain.ErrValidation)

	// ErrGarageNotFound возвращается, когда гараж не найден
	ErrGarageNotFound = fmt.Errorf("%w: garage not found", domain.ErrNotFound)

	// ErrSlotUnavailable возвращается, когда окно уже недоступно
	ErrSlotUnavailable = fmt.Errorf("%w: requested window is not available", domain.ErrConflict)

	// ErrConcurrentUpdate возвращается, когда параллельная транзакция изменила те же данные
	ErrConcurrentUpdate = fmt.Errorf("%w: garage was booked concurrently, retry the request", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: create_reservation", domain.ErrInternal)
)
