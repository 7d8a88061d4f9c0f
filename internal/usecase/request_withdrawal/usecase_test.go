package request_withdrawal_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/internal/service/ledger"
	"github.com/m04kA/SMC-GarageService/internal/usecase/request_withdrawal"
	"github.com/m04kA/SMC-GarageService/internal/usecase/usecasetest"
	"github.com/m04kA/SMC-GarageService/pkg/logger"
)

type env struct {
	wallets     *usecasetest.Wallets
	withdrawals *usecasetest.Withdrawals
	ledger      *ledger.Ledger
	uc          *request_withdrawal.UseCase
}

func newEnv() *env {
	e := &env{
		wallets:     usecasetest.NewWallets(),
		withdrawals: &usecasetest.Withdrawals{},
	}
	e.ledger = ledger.NewLedger(e.wallets, &usecasetest.Metrics{}, logger.Nop())
	e.uc = request_withdrawal.NewUseCase(e.ledger, e.withdrawals, usecasetest.Tx{}, logger.Nop())
	return e
}

// fund кладет сумму в available владельца через hold + release
func (e *env) fund(t *testing.T, ownerID uuid.UUID, amount domain.Cents) {
	t.Helper()
	ctx := context.Background()
	reservationID := uuid.New()
	_, err := e.ledger.Hold(ctx, ownerID, reservationID, amount)
	require.NoError(t, err)
	_, err = e.ledger.Release(ctx, ownerID, reservationID, amount)
	require.NoError(t, err)
}

func request(ownerID uuid.UUID, amount domain.Cents) *request_withdrawal.Request {
	return &request_withdrawal.Request{
		OwnerID:       ownerID,
		Amount:        amount,
		BankName:      "BCP",
		AccountNumber: "191-12345678-0-12",
	}
}

func TestExecute_DebitsAvailableAndCreatesPendingRequest(t *testing.T) {
	e := newEnv()
	ownerID := uuid.New()
	e.fund(t, ownerID, 9000)

	resp, err := e.uc.Execute(context.Background(), request(ownerID, 5000))
	require.NoError(t, err)

	assert.Equal(t, domain.WithdrawalPending, resp.Withdrawal.Status)
	assert.Equal(t, domain.Cents(5000), resp.Withdrawal.Amount)
	assert.Equal(t, resp.Wallet.ID, resp.Withdrawal.WalletID)
	assert.Equal(t, domain.MovementWithdrawal, resp.Movement.Type)

	available, held := e.wallets.Balance(ownerID)
	assert.Equal(t, domain.Cents(4000), available)
	assert.Equal(t, domain.Cents(0), held)
	require.Len(t, e.withdrawals.Items, 1)
}

func TestExecute_InsufficientFunds(t *testing.T) {
	e := newEnv()
	ownerID := uuid.New()
	e.fund(t, ownerID, 9000)

	_, err := e.uc.Execute(context.Background(), request(ownerID, 9001))
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	available, _ := e.wallets.Balance(ownerID)
	assert.Equal(t, domain.Cents(9000), available)
	assert.Empty(t, e.withdrawals.Items)
}

func TestExecute_HeldFundsAreNotWithdrawable(t *testing.T) {
	e := newEnv()
	ownerID := uuid.New()
	_, err := e.ledger.Hold(context.Background(), ownerID, uuid.New(), 9000)
	require.NoError(t, err)

	_, err = e.uc.Execute(context.Background(), request(ownerID, 1))
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestExecute_NoWalletIsInsufficientFunds(t *testing.T) {
	e := newEnv()

	_, err := e.uc.Execute(context.Background(), request(uuid.New(), 100))
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestExecute_Validation(t *testing.T) {
	e := newEnv()
	ownerID := uuid.New()

	_, err := e.uc.Execute(context.Background(), request(ownerID, 0))
	assert.ErrorIs(t, err, request_withdrawal.ErrInvalidAmount)

	req := request(ownerID, 100)
	req.AccountNumber = " "
	_, err = e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, request_withdrawal.ErrBankDetailsRequired)
}
