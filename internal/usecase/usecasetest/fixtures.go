package usecasetest

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/pkg/types"
)

// Reservation бронирование на 2 часа по 50/ч: total 100, комиссия 10, выплата 90.
// days - число дат (с 2026-03-01, 10:00-12:00), все scheduled.
func Reservation(status domain.ReservationStatus, days int) *domain.Reservation {
	res := &domain.Reservation{
		ID:             uuid.New(),
		RenterID:       uuid.New(),
		OwnerID:        uuid.New(),
		GarageID:       uuid.New(),
		Status:         status,
		ChargeMode:     domain.ChargePerHour,
		Subtotal:       10000 * domain.Cents(days),
		Total:          10000 * domain.Cents(days),
		Commission:     1000 * domain.Cents(days),
		OwnerPayout:    9000 * domain.Cents(days),
		WaiverAccepted: true,
		WaiverVersion:  domain.DefaultTermsVersion,
	}

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < days; i++ {
		res.Dates = append(res.Dates, domain.ReservationDate{
			ID:            uuid.New(),
			ReservationID: res.ID,
			Date:          start.AddDate(0, 0, i),
			StartTime:     types.MustTimeOfDay("10:00"),
			EndTime:       types.MustTimeOfDay("12:00"),
			Status:        domain.LineItemScheduled,
		})
	}

	return res
}
