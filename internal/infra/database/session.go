package database

import (
	"context"
	"database/sql"
)

// DBTX is the session handle repositories execute against: the bare
// *sql.DB for read paths outside any Unit of Work, or the *sql.Tx the
// Unit of Work currently owns. Repositories never begin, commit or
// roll back on it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
