package db

import (
	"context"
	"database/sql"
)

// DBTX abstracts over *sql.DB and *sql.Tx so the report, staff, summary,
// and settings repositories can run unchanged inside a unit-of-work
// transaction or directly against the database.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
