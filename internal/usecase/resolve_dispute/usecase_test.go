package resolve_dispute_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/internal/service/ledger"
	"github.com/m04kA/SMC-GarageService/internal/usecase/report_dispute"
	"github.com/m04kA/SMC-GarageService/internal/usecase/resolve_dispute"
	"github.com/m04kA/SMC-GarageService/internal/usecase/usecasetest"
	"github.com/m04kA/SMC-GarageService/pkg/logger"
	"github.com/m04kA/SMC-GarageService/pkg/ptr"
)

type env struct {
	reservations *usecasetest.Reservations
	tickets      *usecasetest.Tickets
	wallets      *usecasetest.Wallets
	metrics      *usecasetest.Metrics
	ledger       *ledger.Ledger
	uc           *resolve_dispute.UseCase
}

func newEnv() *env {
	e := &env{
		reservations: usecasetest.NewReservations(),
		tickets:      usecasetest.NewTickets(),
		wallets:      usecasetest.NewWallets(),
		metrics:      &usecasetest.Metrics{},
	}
	e.ledger = ledger.NewLedger(e.wallets, e.metrics, logger.Nop())
	e.uc = resolve_dispute.NewUseCase(e.reservations, e.tickets, e.ledger, usecasetest.Tx{}, e.metrics, logger.Nop())
	return e
}

// disputed готовит бронирование в статусе status с соответствующим балансом и открывает спор
func (e *env) disputed(t *testing.T, status domain.ReservationStatus) (*domain.Reservation, uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	res := e.reservations.Put(usecasetest.Reservation(status, 1))

	_, err := e.ledger.Hold(ctx, res.OwnerID, res.ID, res.OwnerPayout)
	require.NoError(t, err)
	if status == domain.ReservationCompleted {
		_, err = e.ledger.Release(ctx, res.OwnerID, res.ID, res.OwnerPayout)
		require.NoError(t, err)
	}

	resp, err := report_dispute.NewUseCase(e.reservations, e.tickets, usecasetest.Tx{}, e.metrics, logger.Nop()).
		Execute(ctx, &report_dispute.Request{
			ActorID:       res.RenterID,
			ReservationID: res.ID,
			Category:      "damage",
			Description:   "garage was flooded",
		})
	require.NoError(t, err)
	return res, resp.Ticket.ID
}

func (e *env) resolve(ticketID uuid.UUID, decision domain.DisputeDecision) (*resolve_dispute.Response, error) {
	return e.uc.Execute(context.Background(), &resolve_dispute.Request{
		ActorID:  uuid.New(),
		IsAdmin:  true,
		TicketID: ticketID,
		Decision: decision,
		Notes:    ptr.Ptr("reviewed evidence"),
	})
}

func TestDisputeFreezesFundsUntilResolution(t *testing.T) {
	e := newEnv()
	res, _ := e.disputed(t, domain.ReservationInProgress)

	// открытие спора не меняет ledger
	assert.Equal(t, 1, e.wallets.MovementCount(res.OwnerID))
	available, held := e.wallets.Balance(res.OwnerID)
	assert.Equal(t, domain.Cents(0), available)
	assert.Equal(t, domain.Cents(9000), held)
}

func TestFavorRenter_RefundsHeldFunds(t *testing.T) {
	e := newEnv()
	res, ticketID := e.disputed(t, domain.ReservationPaid)

	resp, err := e.resolve(ticketID, domain.DecisionFavorRenter)
	require.NoError(t, err)

	require.NotNil(t, resp.Movement)
	assert.Equal(t, domain.MovementRefund, resp.Movement.Type)
	assert.Equal(t, domain.TicketClosedForRenter, resp.Ticket.Status)
	assert.Equal(t, domain.ReservationRefunded, e.reservations.Status(res.ID))

	available, held := e.wallets.Balance(res.OwnerID)
	assert.Equal(t, domain.Cents(0), available)
	assert.Equal(t, domain.Cents(0), held)

	audit, err := e.ledger.Verify(context.Background(), res.OwnerID)
	require.NoError(t, err)
	assert.True(t, audit.Consistent)
}

func TestFavorRenter_ReversesReleasedFunds(t *testing.T) {
	e := newEnv()
	res, ticketID := e.disputed(t, domain.ReservationCompleted)

	resp, err := e.resolve(ticketID, domain.DecisionFavorRenter)
	require.NoError(t, err)

	require.NotNil(t, resp.Movement)
	assert.Equal(t, domain.MovementReversal, resp.Movement.Type)
	available, held := e.wallets.Balance(res.OwnerID)
	assert.Equal(t, domain.Cents(0), available)
	assert.Equal(t, domain.Cents(0), held)
}

func TestFavorOwner_ReleasesHeldFunds(t *testing.T) {
	e := newEnv()
	res, ticketID := e.disputed(t, domain.ReservationInProgress)

	resp, err := e.resolve(ticketID, domain.DecisionFavorOwner)
	require.NoError(t, err)

	require.NotNil(t, resp.Movement)
	assert.Equal(t, domain.MovementRelease, resp.Movement.Type)
	assert.Equal(t, domain.TicketClosedForOwner, resp.Ticket.Status)
	assert.Equal(t, domain.ReservationCompleted, e.reservations.Status(res.ID))

	available, held := e.wallets.Balance(res.OwnerID)
	assert.Equal(t, domain.Cents(9000), available)
	assert.Equal(t, domain.Cents(0), held)
	assert.Equal(t, []string{"disputed", "completed"}, e.metrics.Transitions)
}

func TestFavorOwner_CompletedReservationHasNoMovement(t *testing.T) {
	e := newEnv()
	res, ticketID := e.disputed(t, domain.ReservationCompleted)

	resp, err := e.resolve(ticketID, domain.DecisionFavorOwner)
	require.NoError(t, err)

	assert.Nil(t, resp.Movement)
	available, _ := e.wallets.Balance(res.OwnerID)
	assert.Equal(t, domain.Cents(9000), available)
}

func TestResolve_ClosedTicketIsConflict(t *testing.T) {
	e := newEnv()
	res, ticketID := e.disputed(t, domain.ReservationPaid)

	_, err := e.resolve(ticketID, domain.DecisionFavorRenter)
	require.NoError(t, err)

	_, err = e.resolve(ticketID, domain.DecisionFavorOwner)
	assert.ErrorIs(t, err, resolve_dispute.ErrTicketClosed)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, domain.ReservationRefunded, e.reservations.Status(res.ID))
}

func TestResolve_Guards(t *testing.T) {
	e := newEnv()
	_, ticketID := e.disputed(t, domain.ReservationPaid)

	_, err := e.uc.Execute(context.Background(), &resolve_dispute.Request{
		ActorID:  uuid.New(),
		TicketID: ticketID,
		Decision: domain.DecisionFavorOwner,
	})
	assert.ErrorIs(t, err, resolve_dispute.ErrNotAdmin)

	_, err = e.resolve(ticketID, "split")
	assert.ErrorIs(t, err, resolve_dispute.ErrInvalidDecision)

	_, err = e.resolve(uuid.New(), domain.DecisionFavorOwner)
	assert.ErrorIs(t, err, resolve_dispute.ErrTicketNotFound)
}
