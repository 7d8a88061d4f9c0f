package availability

import (
	"fmt"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// Причины недоступности окна. Все оборачивают domain.ErrConflict
var (
	// ErrNoSchedule у гаража нет расписания на этот день недели
	ErrNoSchedule = fmt.Errorf("%w: garage has no schedule for this day", domain.ErrConflict)

	// ErrClosed гараж закрыт в этот день недели
	ErrClosed = fmt.Errorf("%w: garage is closed on this day", domain.ErrConflict)

	// ErrOutsideHours окно выходит за часы работы
	ErrOutsideHours = fmt.Errorf("%w: window is outside opening hours", domain.ErrConflict)

	// ErrBlackout дата заблокирована владельцем
	ErrBlackout = fmt.Errorf("%w: date is blocked by the owner", domain.ErrConflict)

	// ErrOverlap окно пересекается с бронированием (с учетом буфера уборки)
	ErrOverlap = fmt.Errorf("%w: window overlaps an existing reservation", domain.ErrConflict)
)
