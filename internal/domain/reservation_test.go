package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

func TestReservation_AllDatesCompleted(t *testing.T) {
	r := &domain.Reservation{Dates: []domain.ReservationDate{
		{ID: uuid.New(), Status: domain.LineItemCompleted},
		{ID: uuid.New(), Status: domain.LineItemInProgress},
	}}
	assert.False(t, r.AllDatesCompleted())

	r.Dates[1].Status = domain.LineItemCompleted
	assert.True(t, r.AllDatesCompleted())

	assert.False(t, (&domain.Reservation{}).AllDatesCompleted())
}

func TestReservationStatus_BlocksAvailability(t *testing.T) {
	assert.True(t, domain.ReservationPending.BlocksAvailability())
	assert.True(t, domain.ReservationDisputed.BlocksAvailability())
	assert.False(t, domain.ReservationCancelled.BlocksAvailability())
	assert.False(t, domain.ReservationRefunded.BlocksAvailability())
}

func TestReservationStatus_CanBeDisputed(t *testing.T) {
	assert.False(t, domain.ReservationPending.CanBeDisputed())
	assert.True(t, domain.ReservationPaid.CanBeDisputed())
	assert.True(t, domain.ReservationInProgress.CanBeDisputed())
	assert.True(t, domain.ReservationCompleted.CanBeDisputed())
	assert.False(t, domain.ReservationDisputed.CanBeDisputed())
	assert.False(t, domain.ReservationRefunded.CanBeDisputed())
}

func TestReservation_IsParticipant(t *testing.T) {
	renter, owner := uuid.New(), uuid.New()
	r := &domain.Reservation{RenterID: renter, OwnerID: owner}

	assert.True(t, r.IsParticipant(renter))
	assert.True(t, r.IsParticipant(owner))
	assert.False(t, r.IsParticipant(uuid.New()))
	assert.True(t, r.IsRenter(renter))
	assert.False(t, r.IsRenter(owner))
}
