package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_InMemory(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// All tables exist after migration.
	for _, table := range []string{"staff", "reports", "weekly_summaries", "admin_settings"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}
}

func TestMigrate_Rerunnable(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	assert.NoError(t, Migrate(database))
	assert.NoError(t, Migrate(database))
}

func TestOpenDB_ForeignKeysEnforced(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO reports (id, user_id, week_ending_date, created_at, updated_at)
		 VALUES ('r1', 'no-such-user', '2024-03-02', '2024-03-02T00:00:00Z', '2024-03-02T00:00:00Z')`)
	assert.Error(t, err, "reports require an existing staff row")
}

func TestUnitOfWork_CommitAndRollback(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	uow := NewSQLiteUnitOfWork(database)
	ctx := context.Background()

	err = uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO staff (id, email, created_at, updated_at)
			 VALUES ('s1', 'a@example.edu', '2024-03-02T00:00:00Z', '2024-03-02T00:00:00Z')`)
		return err
	})
	require.NoError(t, err)

	err = uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO staff (id, email, created_at, updated_at)
			 VALUES ('s2', 'b@example.edu', '2024-03-02T00:00:00Z', '2024-03-02T00:00:00Z')`); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM staff`).Scan(&count))
	assert.Equal(t, 1, count, "the failed transaction rolled back")
}
