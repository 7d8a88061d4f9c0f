package availability

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/pkg/types"
)

// 2026-03-01 is a Sunday
var day = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func window(start, end string) types.Interval {
	return types.Interval{Start: types.MustTimeOfDay(start), End: types.MustTimeOfDay(end)}
}

func calendar(buffer int) *domain.GarageCalendar {
	g := &domain.Garage{ID: uuid.New(), CleaningBufferMinutes: buffer}
	return &domain.GarageCalendar{
		Garage: g,
		Schedules: []domain.WeeklySchedule{{
			GarageID:  g.ID,
			DayOfWeek: int(time.Sunday),
			IsOpen:    true,
			OpenTime:  types.MustTimeOfDay("08:00"),
			CloseTime: types.MustTimeOfDay("20:00"),
		}},
		Booked: []domain.BookedSlot{{
			ReservationID:     uuid.New(),
			ReservationStatus: domain.ReservationPaid,
			Date:              day,
			Window:            window("10:00", "12:00"),
		}},
	}
}

func TestCheck_CleaningBuffer(t *testing.T) {
	cal := calendar(30)

	assert.ErrorIs(t, Check(cal, day, window("12:00", "14:00")), ErrOverlap)
	assert.NoError(t, Check(cal, day, window("12:30", "14:00")))
	assert.ErrorIs(t, Check(cal, day, window("09:00", "11:00")), ErrOverlap)
}

func TestCheck_BackToBackWithoutBuffer(t *testing.T) {
	cal := calendar(0)

	assert.NoError(t, Check(cal, day, window("12:00", "14:00")))
	assert.NoError(t, Check(cal, day, window("08:00", "10:00")))
	assert.ErrorIs(t, Check(cal, day, window("11:59", "13:00")), ErrOverlap)
}

func TestCheck_BufferDoesNotExtendStart(t *testing.T) {
	cal := calendar(30)

	assert.NoError(t, Check(cal, day, window("08:00", "10:00")))
}

func TestCheck_IgnoresCancelledAndRefunded(t *testing.T) {
	for _, status := range []domain.ReservationStatus{domain.ReservationCancelled, domain.ReservationRefunded} {
		cal := calendar(30)
		cal.Booked[0].ReservationStatus = status

		assert.NoError(t, Check(cal, day, window("10:00", "12:00")), status)
	}
}

func TestCheck_DisputedStillBlocks(t *testing.T) {
	cal := calendar(0)
	cal.Booked[0].ReservationStatus = domain.ReservationDisputed

	assert.ErrorIs(t, Check(cal, day, window("11:00", "13:00")), ErrOverlap)
}

func TestCheck_OtherDateDoesNotBlock(t *testing.T) {
	cal := calendar(30)
	cal.Booked[0].Date = day.AddDate(0, 0, 7)

	assert.NoError(t, Check(cal, day, window("10:00", "12:00")))
}

func TestCheck_Blackout(t *testing.T) {
	cal := calendar(0)
	// same calendar date, different instant
	cal.Blackouts = []domain.BlackoutDate{{Date: day.Add(15 * time.Hour)}}

	assert.ErrorIs(t, Check(cal, day, window("14:00", "16:00")), ErrBlackout)
}

func TestCheck_Schedule(t *testing.T) {
	t.Run("no entry for weekday", func(t *testing.T) {
		cal := calendar(0)
		assert.ErrorIs(t, Check(cal, day.AddDate(0, 0, 1), window("14:00", "16:00")), ErrNoSchedule)
	})

	t.Run("closed", func(t *testing.T) {
		cal := calendar(0)
		cal.Schedules[0].IsOpen = false
		assert.ErrorIs(t, Check(cal, day, window("14:00", "16:00")), ErrClosed)
	})

	t.Run("outside hours", func(t *testing.T) {
		cal := calendar(0)
		assert.ErrorIs(t, Check(cal, day, window("07:30", "09:00")), ErrOutsideHours)
		assert.ErrorIs(t, Check(cal, day, window("19:00", "20:30")), ErrOutsideHours)
		assert.NoError(t, Check(cal, day, window("18:00", "20:00")))
	})
}

func TestCheck_ErrorsAreConflicts(t *testing.T) {
	assert.ErrorIs(t, Check(calendar(30), day, window("12:00", "14:00")), domain.ErrConflict)
}

func TestFilter(t *testing.T) {
	free := calendar(0)
	free.Booked = nil
	busy := calendar(0)

	got := Filter([]*domain.GarageCalendar{free, busy}, day, window("10:30", "11:30"))

	assert.Len(t, got, 1)
	assert.Same(t, free, got[0])
}
