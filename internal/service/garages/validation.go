package garages

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/pkg/types"
)

func validateCreate(req *CreateRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return ErrNameTooLong
	}

	if req.HourlyRate == nil && req.DailyRate == nil {
		return ErrRateRequired
	}
	if (req.HourlyRate != nil && *req.HourlyRate <= 0) || (req.DailyRate != nil && *req.DailyRate <= 0) {
		return ErrInvalidRate
	}

	if req.MinHours != nil && *req.MinHours < 1 {
		return ErrInvalidMinHours
	}
	if req.CleaningBufferMinutes != nil {
		if b := *req.CleaningBufferMinutes; b < 0 || b > domain.MaxCleaningBufferMinutes {
			return ErrInvalidBuffer
		}
	}

	return nil
}

// buildSchedule применяет значения по умолчанию и проверяет часы работы
func buildSchedule(req *ScheduleRequest) (*domain.WeeklySchedule, error) {
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return nil, ErrInvalidDayOfWeek
	}

	isOpen := true
	if req.IsOpen != nil {
		isOpen = *req.IsOpen
	}

	openStr, closeStr := domain.DefaultScheduleOpen, domain.DefaultScheduleClose
	if req.OpenTime != nil {
		openStr = *req.OpenTime
	}
	if req.CloseTime != nil {
		closeStr = *req.CloseTime
	}

	openTime, err := types.ParseTimeOfDay(openStr)
	if err != nil {
		return nil, ErrInvalidTime
	}
	closeTime, err := types.ParseTimeOfDay(closeStr)
	if err != nil {
		return nil, ErrInvalidTime
	}
	if !openTime.IsBefore(closeTime) {
		return nil, ErrInvalidHours
	}

	return &domain.WeeklySchedule{
		GarageID:  req.GarageID,
		DayOfWeek: req.DayOfWeek,
		IsOpen:    isOpen,
		OpenTime:  openTime,
		CloseTime: closeTime,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}
