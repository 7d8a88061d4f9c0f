package search_garages

import (
	"fmt"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

var (
	// ErrMissingParams возвращается, когда не указаны fecha, hora_inicio или hora_fin
	ErrMissingParams = fmt.Errorf("%w: fecha, hora_inicio and hora_fin are required", domain.ErrValidation)

	// ErrInvalidDate возвращается для даты не в формате YYYY-MM-DD
	ErrInvalidDate = fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)

	// ErrInvalidTime возвращается для времени не в формате HH:MM
	ErrInvalidTime = fmt.Errorf("%w: time must be HH:MM", domain.ErrValidation)

	// ErrInvalidWindow возвращается, когда начало не раньше конца
	ErrInvalidWindow = fmt.Errorf("%w: start time must be before end time", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: search_garages", domain.ErrInternal)
)
