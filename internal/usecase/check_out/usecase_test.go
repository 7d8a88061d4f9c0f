package check_out_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/internal/service/ledger"
	"github.com/m04kA/SMC-GarageService/internal/usecase/check_in"
	"github.com/m04kA/SMC-GarageService/internal/usecase/check_out"
	"github.com/m04kA/SMC-GarageService/internal/usecase/pay_reservation"
	"github.com/m04kA/SMC-GarageService/internal/usecase/usecasetest"
	"github.com/m04kA/SMC-GarageService/pkg/logger"
)

type env struct {
	reservations *usecasetest.Reservations
	wallets      *usecasetest.Wallets
	metrics      *usecasetest.Metrics
	ledger       *ledger.Ledger
}

func newEnv() *env {
	e := &env{
		reservations: usecasetest.NewReservations(),
		wallets:      usecasetest.NewWallets(),
		metrics:      &usecasetest.Metrics{},
	}
	e.ledger = ledger.NewLedger(e.wallets, e.metrics, logger.Nop())
	return e
}

func (e *env) pay(t *testing.T, res *domain.Reservation) {
	t.Helper()
	_, err := pay_reservation.NewUseCase(e.reservations, e.ledger, usecasetest.Tx{}, e.metrics, logger.Nop()).
		Execute(context.Background(), &pay_reservation.Request{ActorID: res.RenterID, ReservationID: res.ID, Method: "transfer"})
	require.NoError(t, err)
}

func (e *env) checkIn(t *testing.T, res *domain.Reservation, i int) {
	t.Helper()
	_, err := check_in.NewUseCase(e.reservations, usecasetest.Tx{}, e.metrics, logger.Nop()).
		Execute(context.Background(), &check_in.Request{ActorID: res.RenterID, ReservationID: res.ID, DateID: res.Dates[i].ID})
	require.NoError(t, err)
}

func (e *env) checkOut(res *domain.Reservation, i int) (*check_out.Response, error) {
	return check_out.NewUseCase(e.reservations, e.ledger, usecasetest.Tx{}, e.metrics, logger.Nop()).
		Execute(context.Background(), &check_out.Request{ActorID: res.RenterID, ReservationID: res.ID, DateID: res.Dates[i].ID})
}

func TestLifecycle_PayCheckInCheckOutReleasesFunds(t *testing.T) {
	e := newEnv()
	res := e.reservations.Put(usecasetest.Reservation(domain.ReservationPending, 1))

	e.pay(t, res)
	available, held := e.wallets.Balance(res.OwnerID)
	assert.Equal(t, domain.Cents(0), available)
	assert.Equal(t, domain.Cents(9000), held)

	e.checkIn(t, res, 0)

	resp, err := e.checkOut(res, 0)
	require.NoError(t, err)
	require.NotNil(t, resp.Movement)
	assert.Equal(t, domain.MovementRelease, resp.Movement.Type)
	assert.Equal(t, domain.ReservationCompleted, e.reservations.Status(res.ID))

	available, held = e.wallets.Balance(res.OwnerID)
	assert.Equal(t, domain.Cents(9000), available)
	assert.Equal(t, domain.Cents(0), held)

	assert.Equal(t, []string{"paid", "in_progress", "completed"}, e.metrics.Transitions)

	audit, err := e.ledger.Verify(context.Background(), res.OwnerID)
	require.NoError(t, err)
	assert.True(t, audit.Consistent)
	assert.Equal(t, 2, audit.Movements)
}

func TestMultiDate_CompletesOnlyAfterLastCheckOut(t *testing.T) {
	e := newEnv()
	res := e.reservations.Put(usecasetest.Reservation(domain.ReservationPending, 2))

	e.pay(t, res)
	e.checkIn(t, res, 0)

	resp, err := e.checkOut(res, 0)
	require.NoError(t, err)
	assert.Nil(t, resp.Movement)
	assert.Equal(t, domain.ReservationInProgress, e.reservations.Status(res.ID))

	_, held := e.wallets.Balance(res.OwnerID)
	assert.Equal(t, domain.Cents(18000), held)

	e.checkIn(t, res, 1)
	resp, err = e.checkOut(res, 1)
	require.NoError(t, err)
	require.NotNil(t, resp.Movement)
	assert.Equal(t, domain.Cents(18000), resp.Movement.Amount)

	available, held := e.wallets.Balance(res.OwnerID)
	assert.Equal(t, domain.Cents(18000), available)
	assert.Equal(t, domain.Cents(0), held)
}

func TestCheckOut_WithoutCheckInIsConflictAndNoLedgerChange(t *testing.T) {
	e := newEnv()
	res := e.reservations.Put(usecasetest.Reservation(domain.ReservationPending, 1))
	e.pay(t, res)

	_, err := e.checkOut(res, 0)
	assert.ErrorIs(t, err, check_out.ErrNotCheckedIn)
	assert.ErrorIs(t, err, domain.ErrConflict)

	assert.Equal(t, 1, e.wallets.MovementCount(res.OwnerID))
	available, held := e.wallets.Balance(res.OwnerID)
	assert.Equal(t, domain.Cents(0), available)
	assert.Equal(t, domain.Cents(9000), held)
}

func TestCheckOut_DisputedReservationIsFrozen(t *testing.T) {
	e := newEnv()
	res := e.reservations.Put(usecasetest.Reservation(domain.ReservationPending, 1))
	e.pay(t, res)
	e.checkIn(t, res, 0)

	require.NoError(t, e.reservations.UpdateStatus(context.Background(), res.ID, domain.ReservationInProgress, domain.ReservationDisputed))

	_, err := e.checkOut(res, 0)
	assert.ErrorIs(t, err, check_out.ErrNotInProgress)
	assert.Equal(t, 1, e.wallets.MovementCount(res.OwnerID))
}

func TestCheckOut_OnlyRenter(t *testing.T) {
	e := newEnv()
	res := e.reservations.Put(usecasetest.Reservation(domain.ReservationInProgress, 1))

	_, err := check_out.NewUseCase(e.reservations, e.ledger, usecasetest.Tx{}, e.metrics, logger.Nop()).
		Execute(context.Background(), &check_out.Request{ActorID: res.OwnerID, ReservationID: res.ID, DateID: res.Dates[0].ID})
	assert.ErrorIs(t, err, check_out.ErrNotRenter)
}
