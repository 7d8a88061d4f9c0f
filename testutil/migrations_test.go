package testutil_test

import (
	"context"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/migrations"
	"github.com/m04kA/SMC-GarageService/testutil"
)

var tables = []string{
	"users", "garages", "garage_schedules", "garage_blackout_dates", "garage_services",
	"garage_images", "reservations", "reservation_dates", "reservation_services",
	"payment_proofs", "reservation_evidence", "wallets", "wallet_movements",
	"withdrawal_requests", "support_tickets", "ratings",
}

func TestMigrations(t *testing.T) {
	db := testutil.NewSQLDB(t)
	ctx := context.Background()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	require.NoError(t, err)

	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err, "initial reset")

	results, err := provider.Up(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, results)

	for _, table := range tables {
		var exists bool
		err := db.QueryRowContext(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM information_schema.tables
				WHERE table_schema = 'public' AND table_name = $1
			)`, table).Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists, "expected table %q to exist", table)
	}

	// leave the schema applied for the other packages sharing the database
	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err)
	_, err = provider.Up(ctx)
	require.NoError(t, err)
}
