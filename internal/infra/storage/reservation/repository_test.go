package reservation_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	garageRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/garage"
	"github.com/m04kA/SMC-GarageService/internal/infra/storage/reservation"
	userRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/user"
	"github.com/m04kA/SMC-GarageService/pkg/ptr"
	"github.com/m04kA/SMC-GarageService/pkg/types"
	"github.com/m04kA/SMC-GarageService/testutil"
)

var bookingDay = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

type fixture struct {
	renter  uuid.UUID
	garage  *domain.Garage
	repo    *reservation.Repository
	garages *garageRepo.Repository
}

func newFixture(t *testing.T, ctx context.Context) fixture {
	t.Helper()
	db := testutil.NewSQLDB(t)
	users := userRepo.NewRepository(db)

	owner, err := users.Create(ctx, &domain.User{Email: uuid.NewString() + "@example.com", PasswordHash: "h", Role: domain.RoleUser})
	require.NoError(t, err)
	renter, err := users.Create(ctx, &domain.User{Email: uuid.NewString() + "@example.com", PasswordHash: "h", Role: domain.RoleUser})
	require.NoError(t, err)

	garages := garageRepo.NewRepository(db)
	g, err := garages.Create(ctx, &domain.Garage{
		OwnerID:               owner.ID,
		Name:                  "Garage",
		HourlyRate:            ptr.Ptr(domain.Cents(5000)),
		MinHours:              1,
		CleaningBufferMinutes: 30,
	})
	require.NoError(t, err)

	return fixture{renter: renter.ID, garage: g, repo: reservation.NewRepository(db), garages: garages}
}

func (f fixture) reservation(start, end string) *domain.Reservation {
	return &domain.Reservation{
		RenterID:      f.renter,
		GarageID:      f.garage.ID,
		OwnerID:       f.garage.OwnerID,
		Status:        domain.ReservationPending,
		ChargeMode:    domain.ChargePerHour,
		Subtotal:      10000,
		Total:         10000,
		Commission:    1000,
		OwnerPayout:   9000,
		WaiverVersion: domain.DefaultTermsVersion,
		Dates: []domain.ReservationDate{{
			Date:      bookingDay,
			StartTime: types.MustTimeOfDay(start),
			EndTime:   types.MustTimeOfDay(end),
			Status:    domain.LineItemScheduled,
		}},
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	ctx := testutil.TxContext(t, testutil.NewSQLDB(t))
	f := newFixture(t, ctx)

	created, err := f.repo.Create(ctx, f.reservation("10:00", "12:00"))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)
	require.Len(t, created.Dates, 1)
	require.NotEqual(t, uuid.Nil, created.Dates[0].ID)

	got, err := f.repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(9000), got.OwnerPayout)
	require.Len(t, got.Dates, 1)
	assert.Equal(t, "10:00", got.Dates[0].StartTime.String())
	assert.True(t, domain.SameDate(bookingDay, got.Dates[0].Date))
}

func TestRepository_UpdateStatusIsConditional(t *testing.T) {
	ctx := testutil.TxContext(t, testutil.NewSQLDB(t))
	f := newFixture(t, ctx)

	created, err := f.repo.Create(ctx, f.reservation("10:00", "12:00"))
	require.NoError(t, err)

	require.NoError(t, f.repo.UpdateStatus(ctx, created.ID, domain.ReservationPending, domain.ReservationPaid))

	err = f.repo.UpdateStatus(ctx, created.ID, domain.ReservationPending, domain.ReservationPaid)
	assert.ErrorIs(t, err, reservation.ErrStatusMismatch)

	err = f.repo.UpdateDateStatus(ctx, created.Dates[0].ID, domain.LineItemScheduled, domain.LineItemInProgress, time.Now())
	require.NoError(t, err)

	got, err := f.repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationPaid, got.Status)
	assert.Equal(t, domain.LineItemInProgress, got.Dates[0].Status)
	assert.NotNil(t, got.Dates[0].CheckInAt)
}

func TestRepository_CalendarSkipsCancelledReservations(t *testing.T) {
	ctx := testutil.TxContext(t, testutil.NewSQLDB(t))
	f := newFixture(t, ctx)

	active, err := f.repo.Create(ctx, f.reservation("10:00", "12:00"))
	require.NoError(t, err)
	cancelled, err := f.repo.Create(ctx, f.reservation("14:00", "16:00"))
	require.NoError(t, err)
	require.NoError(t, f.repo.UpdateStatus(ctx, cancelled.ID, domain.ReservationPending, domain.ReservationCancelled))

	_, err = f.garages.AddBlackout(ctx, &domain.BlackoutDate{GarageID: f.garage.ID, Date: bookingDay.AddDate(0, 0, 1)})
	require.NoError(t, err)

	cal, err := f.garages.GetCalendar(ctx, f.garage.ID, bookingDay)
	require.NoError(t, err)

	require.Len(t, cal.Booked, 1)
	assert.Equal(t, active.ID, cal.Booked[0].ReservationID)
	assert.Empty(t, cal.Blackouts)
}
