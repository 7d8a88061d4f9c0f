package garages

import (
	"fmt"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

var (
	// ErrNameRequired возвращается для гаража без названия
	ErrNameRequired = fmt.Errorf("%w: garage name is required", domain.ErrValidation)

	// ErrNameTooLong возвращается для слишком длинного названия
	ErrNameTooLong = fmt.Errorf("%w: garage name is too long", domain.ErrValidation)

	// ErrRateRequired возвращается, когда не задан ни почасовой, ни дневной тариф
	ErrRateRequired = fmt.Errorf("%w: at least one of hourly or daily rate is required", domain.ErrValidation)

	// ErrInvalidRate возвращается для отрицательного тарифа
	ErrInvalidRate = fmt.Errorf("%w: rates must be positive", domain.ErrValidation)

	// ErrInvalidMinHours возвращается для минимального времени < 1 часа
	ErrInvalidMinHours = fmt.Errorf("%w: minimum hours must be at least 1", domain.ErrValidation)

	// ErrInvalidBuffer возвращается для буфера уборки вне допустимого диапазона
	ErrInvalidBuffer = fmt.Errorf("%w: cleaning buffer must be between 0 and %d minutes", domain.ErrValidation, domain.MaxCleaningBufferMinutes)

	// ErrInvalidDayOfWeek возвращается для дня недели вне 0..6
	ErrInvalidDayOfWeek = fmt.Errorf("%w: day of week must be between 0 and 6", domain.ErrValidation)

	// ErrInvalidTime возвращается для времени не в формате HH:MM
	ErrInvalidTime = fmt.Errorf("%w: time must be HH:MM", domain.ErrValidation)

	// ErrInvalidHours возвращается, когда открытие не раньше закрытия
	ErrInvalidHours = fmt.Errorf("%w: opening time must be before closing time", domain.ErrValidation)

	// ErrInvalidDate возвращается для даты не в формате YYYY-MM-DD
	ErrInvalidDate = fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)

	// ErrServiceNameRequired возвращается для услуги без названия
	ErrServiceNameRequired = fmt.Errorf("%w: service name is required", domain.ErrValidation)

	// ErrInvalidPrice возвращается для отрицательной цены услуги
	ErrInvalidPrice = fmt.Errorf("%w: service price must not be negative", domain.ErrValidation)

	// ErrURLRequired возвращается для пустой ссылки на фото
	ErrURLRequired = fmt.Errorf("%w: image url is required", domain.ErrValidation)

	// ErrGarageNotFound возвращается, когда гараж не найден
	ErrGarageNotFound = fmt.Errorf("%w: garage not found", domain.ErrNotFound)

	// ErrNotOwner возвращается, когда пользователь не владелец гаража
	ErrNotOwner = fmt.Errorf("%w: you do not own this garage", domain.ErrAuthorization)

	// ErrBlackoutExists возвращается, когда дата уже заблокирована
	ErrBlackoutExists = fmt.Errorf("%w: date is already blocked", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = fmt.Errorf("%w: garages", domain.ErrInternal)
)
