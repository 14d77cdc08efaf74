package store

import (
	"context"
	"database/sql"
)

// DBTX is an interface that abstracts the database access layer.
// It is implemented by both *sql.DB and *sql.Tx, allowing store code
// to work with either a database connection or a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Page describes a limit/offset window over a list query. List methods
// return the page of rows together with the total count of rows matching
// the same filter, so pagination metadata always reflects the filtered
// set rather than the unfiltered table.
type Page struct {
	Limit  int
	Offset int
}
