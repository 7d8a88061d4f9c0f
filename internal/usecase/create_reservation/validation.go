package create_reservation

import (
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/pkg/types"
)

// validateRequest проверяет запрос и разбирает даты
func validateRequest(req *Request) ([]lineItem, error) {
	if !req.WaiverAccepted {
		return nil, ErrWaiverRequired
	}
	if len(req.Dates) == 0 {
		return nil, ErrNoDates
	}

	items := make([]lineItem, 0, len(req.Dates))
	for _, d := range req.Dates {
		item, err := parseDateWindow(d)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := validateNoSelfOverlap(items); err != nil {
		return nil, err
	}

	return items, nil
}

func parseDateWindow(d DateWindow) (lineItem, error) {
	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(d.Date))
	if err != nil {
		return lineItem{}, ErrInvalidDate
	}

	start, err := types.ParseTimeOfDay(d.StartTime)
	if err != nil {
		return lineItem{}, ErrInvalidTime
	}
	end, err := types.ParseTimeOfDay(d.EndTime)
	if err != nil {
		return lineItem{}, ErrInvalidTime
	}
	if !start.IsBefore(end) {
		return lineItem{}, ErrInvalidWindow
	}

	return lineItem{date: date, window: types.Interval{Start: start, End: end}}, nil
}

// validateNoSelfOverlap окна одной даты внутри запроса не пересекаются
func validateNoSelfOverlap(items []lineItem) error {
	sorted := make([]lineItem, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].date.Equal(sorted[j].date) {
			return sorted[i].date.Before(sorted[j].date)
		}
		return sorted[i].window.Start.IsBefore(sorted[j].window.Start)
	})

	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if domain.SameDate(prev.date, cur.date) && prev.window.Overlaps(cur.window) {
			return ErrOverlappingDates
		}
	}
	return nil
}
