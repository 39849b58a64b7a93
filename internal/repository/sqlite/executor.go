package sqlite

import (
	"context"
	"database/sql"

	"analysisdesk/internal/domain/repositories"
)

// executor is satisfied by both *sql.DB and *sql.Tx
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type scanner interface {
	Scan(dest ...any) error
}

// exec returns the transaction stored in ctx if there is one, otherwise the database.
// With a single pooled connection, a repository that bypassed an open transaction would block.
func (db *DB) exec(ctx context.Context) executor {
	if tx, ok := repositories.GetTx(ctx).(*sql.Tx); ok && tx != nil {
		return tx
	}
	return db.DB
}
