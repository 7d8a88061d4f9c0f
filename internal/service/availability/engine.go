// Package availability decides whether a garage can be booked for a time
// window on a calendar date. It works on preloaded calendars and does no I/O.
package availability

import (
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/pkg/types"
)

// Check проверяет окно w на дату date по календарю гаража.
// Проверки выполняются по порядку, первая неудачная возвращает свою причину:
//  1. расписание на день недели есть и гараж открыт;
//  2. окно внутри часов работы;
//  3. дата не заблокирована;
//  4. нет пересечения с активными бронированиями, конец каждого расширен буфером уборки.
func Check(cal *domain.GarageCalendar, date time.Time, w types.Interval) error {
	schedule, ok := scheduleFor(cal.Schedules, date.Weekday())
	if !ok {
		return ErrNoSchedule
	}
	if !schedule.IsOpen {
		return ErrClosed
	}

	if !schedule.Window().Contains(w) {
		return ErrOutsideHours
	}

	for _, b := range cal.Blackouts {
		if domain.SameDate(b.Date, date) {
			return ErrBlackout
		}
	}

	buffer := cal.Garage.CleaningBufferMinutes
	for _, slot := range cal.Booked {
		if !slot.ReservationStatus.BlocksAvailability() || !domain.SameDate(slot.Date, date) {
			continue
		}

		occupied := types.Interval{
			Start: slot.Window.Start,
			End:   slot.Window.End.AddMinutes(buffer),
		}
		if w.Overlaps(occupied) {
			return ErrOverlap
		}
	}

	return nil
}

// IsAvailable returns true if Check passes
func IsAvailable(cal *domain.GarageCalendar, date time.Time, w types.Interval) bool {
	return Check(cal, date, w) == nil
}

// Filter оставляет гаражи, доступные для окна w на дату date
func Filter(calendars []*domain.GarageCalendar, date time.Time, w types.Interval) []*domain.GarageCalendar {
	result := make([]*domain.GarageCalendar, 0, len(calendars))
	for _, cal := range calendars {
		if IsAvailable(cal, date, w) {
			result = append(result, cal)
		}
	}
	return result
}

func scheduleFor(schedules []domain.WeeklySchedule, day time.Weekday) (domain.WeeklySchedule, bool) {
	for _, s := range schedules {
		if s.DayOfWeek == int(day) {
			return s, true
		}
	}
	return domain.WeeklySchedule{}, false
}
