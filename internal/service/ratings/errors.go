package ratings

import (
	"fmt"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

var (
	// ErrInvalidScore возвращается для оценки вне 1..5
	ErrInvalidScore = fmt.Errorf("%w: score must be between %d and %d", domain.ErrValidation, domain.MinRatingScore, domain.MaxRatingScore)

	// ErrInvalidTarget возвращается для неизвестного типа цели или чужой цели
	ErrInvalidTarget = fmt.Errorf("%w: rating target must be the garage or the other participant", domain.ErrValidation)

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = fmt.Errorf("%w: reservation not found", domain.ErrNotFound)

	// ErrNotParticipant возвращается, когда оценивает не участник бронирования
	ErrNotParticipant = fmt.Errorf("%w: only the renter or the garage owner can rate", domain.ErrAuthorization)

	// ErrNotCompleted возвращается для незавершенного бронирования
	ErrNotCompleted = fmt.Errorf("%w: only completed reservations can be rated", domain.ErrConflict)

	// ErrAlreadyRated возвращается при повторной оценке
	ErrAlreadyRated = fmt.Errorf("%w: already rated", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = fmt.Errorf("%w: ratings", domain.ErrInternal)
)
