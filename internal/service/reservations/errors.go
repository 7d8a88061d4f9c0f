package reservations

import (
	"fmt"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

var (
	// ErrInvalidRole возвращается для неизвестной роли в фильтре списка
	ErrInvalidRole = fmt.Errorf("%w: role must be renter or owner", domain.ErrValidation)

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = fmt.Errorf("%w: reservation not found", domain.ErrNotFound)

	// ErrNotParticipant возвращается, когда бронирование запрашивает посторонний
	ErrNotParticipant = fmt.Errorf("%w: reservation not found or access denied", domain.ErrAuthorization)

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = fmt.Errorf("%w: reservations", domain.ErrInternal)
)
