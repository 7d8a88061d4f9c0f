package pricing

import (
	"fmt"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

var (
	// ErrInvalidWindow возвращается, когда окно пустое или конец раньше начала
	ErrInvalidWindow = fmt.Errorf("%w: end time must be after start time", domain.ErrValidation)

	// ErrBelowMinimumHours возвращается, когда длительность меньше минимума гаража
	ErrBelowMinimumHours = fmt.Errorf("%w: duration is below the garage minimum hours", domain.ErrValidation)

	// ErrNoRate возвращается, когда у гаража не задан ни один тариф
	ErrNoRate = fmt.Errorf("%w: garage has no hourly or daily rate", domain.ErrValidation)

	// ErrUnknownService возвращается в strict режиме для услуги не из каталога гаража
	ErrUnknownService = fmt.Errorf("%w: extra service does not belong to the garage", domain.ErrValidation)

	// ErrInvalidQuantity возвращается для количества услуги <= 0
	ErrInvalidQuantity = fmt.Errorf("%w: extra service quantity must be positive", domain.ErrValidation)

	// ErrNoItems возвращается, когда в бронировании нет ни одной даты
	ErrNoItems = fmt.Errorf("%w: at least one date is required", domain.ErrValidation)
)
