package check_in_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/internal/usecase/check_in"
	"github.com/m04kA/SMC-GarageService/internal/usecase/usecasetest"
	"github.com/m04kA/SMC-GarageService/pkg/logger"
	"github.com/m04kA/SMC-GarageService/pkg/ptr"
)

func newUseCase(store *usecasetest.Reservations, metrics *usecasetest.Metrics) *check_in.UseCase {
	return check_in.NewUseCase(store, usecasetest.Tx{}, metrics, logger.Nop())
}

func TestExecute_FirstCheckInPromotesReservation(t *testing.T) {
	store := usecasetest.NewReservations()
	metrics := &usecasetest.Metrics{}
	res := store.Put(usecasetest.Reservation(domain.ReservationPaid, 2))

	resp, err := newUseCase(store, metrics).Execute(context.Background(), &check_in.Request{
		ActorID:       res.RenterID,
		ReservationID: res.ID,
		DateID:        res.Dates[0].ID,
		PhotoURL:      ptr.Ptr("https://cdn/in.jpg"),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ReservationInProgress, resp.Reservation.Status)
	assert.Equal(t, domain.EvidenceCheckIn, resp.Evidence.Moment)
	assert.Equal(t, []string{"in_progress"}, metrics.Transitions)

	stored, err := store.GetByID(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LineItemInProgress, stored.Dates[0].Status)
	assert.NotNil(t, stored.Dates[0].CheckInAt)
	assert.Equal(t, domain.LineItemScheduled, stored.Dates[1].Status)

	// вторая дата: бронирование уже in_progress, переход не повторяется
	_, err = newUseCase(store, metrics).Execute(context.Background(), &check_in.Request{
		ActorID:       res.RenterID,
		ReservationID: res.ID,
		DateID:        res.Dates[1].ID,
	})
	require.NoError(t, err)
	assert.Len(t, metrics.Transitions, 1)
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.ReservationStatus
		actor   func(r *domain.Reservation) uuid.UUID
		dateID  func(r *domain.Reservation) uuid.UUID
		wantErr error
	}{
		{
			name:    "pending reservation",
			status:  domain.ReservationPending,
			actor:   func(r *domain.Reservation) uuid.UUID { return r.RenterID },
			dateID:  func(r *domain.Reservation) uuid.UUID { return r.Dates[0].ID },
			wantErr: check_in.ErrNotPaid,
		},
		{
			name:    "disputed reservation",
			status:  domain.ReservationDisputed,
			actor:   func(r *domain.Reservation) uuid.UUID { return r.RenterID },
			dateID:  func(r *domain.Reservation) uuid.UUID { return r.Dates[0].ID },
			wantErr: check_in.ErrNotPaid,
		},
		{
			name:    "owner cannot check in",
			status:  domain.ReservationPaid,
			actor:   func(r *domain.Reservation) uuid.UUID { return r.OwnerID },
			dateID:  func(r *domain.Reservation) uuid.UUID { return r.Dates[0].ID },
			wantErr: check_in.ErrNotRenter,
		},
		{
			name:    "foreign date",
			status:  domain.ReservationPaid,
			actor:   func(r *domain.Reservation) uuid.UUID { return r.RenterID },
			dateID:  func(*domain.Reservation) uuid.UUID { return uuid.New() },
			wantErr: check_in.ErrDateNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := usecasetest.NewReservations()
			res := store.Put(usecasetest.Reservation(tt.status, 1))

			_, err := newUseCase(store, &usecasetest.Metrics{}).Execute(context.Background(), &check_in.Request{
				ActorID:       tt.actor(res),
				ReservationID: res.ID,
				DateID:        tt.dateID(res),
			})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.status, store.Status(res.ID))
		})
	}
}

func TestExecute_DoubleCheckInIsConflict(t *testing.T) {
	store := usecasetest.NewReservations()
	res := store.Put(usecasetest.Reservation(domain.ReservationPaid, 1))
	uc := newUseCase(store, &usecasetest.Metrics{})

	req := &check_in.Request{ActorID: res.RenterID, ReservationID: res.ID, DateID: res.Dates[0].ID}
	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, check_in.ErrAlreadyCheckedIn)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
