package db

import (
	"context"
	"database/sql"
)

// DBTX is the common interface satisfied by both *sql.DB and *sql.Tx.
// Repository implementations depend on this interface instead of the
// concrete *sql.DB, enabling transactional composition.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Compile-time verification that the raw handles and the dialect wrappers
// satisfy DBTX.
var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
	_ DBTX = (*DB)(nil)
	_ DBTX = boundTx{}
)

// boundTx rebinds placeholders for queries issued inside a transaction.
type boundTx struct {
	tx      *sql.Tx
	dialect Dialect
}

func (b boundTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return b.tx.ExecContext(ctx, Rebind(b.dialect, query), args...)
}

func (b boundTx) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return b.tx.QueryContext(ctx, Rebind(b.dialect, query), args...)
}

func (b boundTx) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return b.tx.QueryRowContext(ctx, Rebind(b.dialect, query), args...)
}
