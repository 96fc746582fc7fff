package db

import (
	"context"
	"testing"

	"github.com/go-pg/pg/v10"
)

// requireDB skips the test when no test database is reachable.
func requireDB(t *testing.T) {
	t.Helper()
	if testDB == nil {
		t.Skip("test database is not available, start it with: docker-compose -f docker-compose.test.yml up -d")
	}
}

// withTx runs the test inside a transaction that is always rolled back, so
// tests never leak rows into each other.
func withTx(t *testing.T) (*pg.Tx, context.Context, *Repository) {
	t.Helper()
	requireDB(t)
	ctx := context.Background()

	tx, err := testDB.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	repo := New(tx)
	return tx, ctx, repo
}
