// Package testutil provides shared helpers for integration tests.
// Helpers skip automatically when TEST_DATABASE_URL is not set, so unit tests
// run without a database.
package testutil

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq" // registers "postgres" driver for database/sql

	"github.com/m04kA/SMC-GarageService/migrations"
	"github.com/m04kA/SMC-GarageService/pkg/dbmetrics"
)

// EnvDatabaseURL переменная окружения с DSN тестовой базы
const EnvDatabaseURL = "TEST_DATABASE_URL"

// NewSQLDB opens a *sql.DB against TEST_DATABASE_URL and closes it when the
// test finishes. The test is skipped if the variable is not set.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := requireDSN(t)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: open: %v", err)
	}

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		t.Fatalf("testutil.NewSQLDB: ping: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// TxContext begins a transaction and returns a context carrying it, so every
// repository call made with that context runs inside the transaction.
// The transaction is rolled back when the test finishes.
func TxContext(t *testing.T, db *sql.DB) context.Context {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		t.Fatalf("testutil.TxContext: begin: %v", err)
	}

	t.Cleanup(func() { _ = tx.Rollback() })

	return dbmetrics.WithTx(context.Background(), tx)
}

// RunMain applies migrations and runs the package tests. Use it from TestMain.
// Without TEST_DATABASE_URL tests run as-is and the database tests skip themselves.
func RunMain(m *testing.M) int {
	dsn := os.Getenv(EnvDatabaseURL)
	if dsn == "" {
		return m.Run()
	}

	db := MustOpenSQLDB(dsn)
	if _, err := migrations.Up(context.Background(), db); err != nil {
		db.Close()
		panic("testutil.RunMain: " + err.Error())
	}
	db.Close()

	return m.Run()
}

// MustOpenSQLDB opens a *sql.DB for the given DSN and panics on any error.
// Callers are responsible for closing the returned *sql.DB.
func MustOpenSQLDB(dsn string) *sql.DB {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		panic("testutil.MustOpenSQLDB: open: " + err.Error())
	}
	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		panic("testutil.MustOpenSQLDB: ping: " + err.Error())
	}
	return db
}

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv(EnvDatabaseURL)
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}
	return dsn
}
