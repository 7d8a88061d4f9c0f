package wallet_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	userRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/user"
	"github.com/m04kA/SMC-GarageService/internal/infra/storage/wallet"
	"github.com/m04kA/SMC-GarageService/testutil"
)

func newOwner(t *testing.T, ctx context.Context, users *userRepo.Repository) uuid.UUID {
	t.Helper()
	u, err := users.Create(ctx, &domain.User{
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "hash",
		Role:         domain.RoleUser,
	})
	require.NoError(t, err)
	return u.ID
}

func TestRepository_EnsureWalletIsIdempotent(t *testing.T) {
	db := testutil.NewSQLDB(t)
	ctx := testutil.TxContext(t, db)
	repo := wallet.NewRepository(db)
	ownerID := newOwner(t, ctx, userRepo.NewRepository(db))

	first, err := repo.EnsureWallet(ctx, ownerID)
	require.NoError(t, err)
	second, err := repo.EnsureWallet(ctx, ownerID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, domain.Cents(0), second.Available)
	assert.Equal(t, domain.Cents(0), second.Held)
}

func TestRepository_ApplyDeltaRejectsNegative(t *testing.T) {
	db := testutil.NewSQLDB(t)
	ctx := testutil.TxContext(t, db)
	repo := wallet.NewRepository(db)
	ownerID := newOwner(t, ctx, userRepo.NewRepository(db))

	w, err := repo.EnsureWallet(ctx, ownerID)
	require.NoError(t, err)

	w, err = repo.ApplyDelta(ctx, w.ID, 0, 9000)
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(9000), w.Held)

	w, err = repo.ApplyDelta(ctx, w.ID, 9000, -9000)
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(9000), w.Available)
	assert.Equal(t, domain.Cents(0), w.Held)

	_, err = repo.ApplyDelta(ctx, w.ID, -9001, 0)
	assert.ErrorIs(t, err, wallet.ErrNegativeBalance)

	got, err := repo.GetByOwner(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(9000), got.Available)
}

func TestRepository_MovementsReplayToBalance(t *testing.T) {
	db := testutil.NewSQLDB(t)
	ctx := testutil.TxContext(t, db)
	repo := wallet.NewRepository(db)
	ownerID := newOwner(t, ctx, userRepo.NewRepository(db))

	w, err := repo.EnsureWallet(ctx, ownerID)
	require.NoError(t, err)

	for _, m := range []domain.Movement{
		{WalletID: w.ID, Type: domain.MovementHold, Amount: 9000},
		{WalletID: w.ID, Type: domain.MovementRelease, Amount: 9000},
		{WalletID: w.ID, Type: domain.MovementWithdrawal, Amount: 4000},
	} {
		m := m
		da, dh := m.Type.Delta(m.Amount)
		_, err := repo.ApplyDelta(ctx, w.ID, da, dh)
		require.NoError(t, err)
		_, err = repo.InsertMovement(ctx, &m)
		require.NoError(t, err)
	}

	movements, err := repo.ListMovements(ctx, w.ID, 0)
	require.NoError(t, err)
	require.Len(t, movements, 3)

	available, held := domain.ReplayBalance(movements)
	stored, err := repo.GetByOwner(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, stored.Available, available)
	assert.Equal(t, stored.Held, held)
	assert.Equal(t, domain.Cents(5000), available)

	limited, err := repo.ListMovements(ctx, w.ID, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestRepository_GetByOwnerNotFound(t *testing.T) {
	db := testutil.NewSQLDB(t)
	repo := wallet.NewRepository(db)

	_, err := repo.GetByOwner(context.Background(), uuid.New())
	assert.ErrorIs(t, err, wallet.ErrWalletNotFound)
}
