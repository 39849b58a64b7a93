package postgres

import (
	"context"
	"fmt"

	"analysisdesk/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Admin runs schema-level operations against a Postgres store
type Admin struct {
	pool   *pgxpool.Pool
	tables *database.TableNames
}

// NewAdmin creates a schema administrator for the given pool and tables
func NewAdmin(pool *pgxpool.Pool, tables *database.TableNames) *Admin {
	return &Admin{pool: pool, tables: tables}
}

// Migrate creates any missing tables and indexes
func (a *Admin) Migrate(ctx context.Context) error {
	return a.execAll(ctx, "migrate", database.Schema(database.Postgres, a.tables))
}

// Drop removes every table
func (a *Admin) Drop(ctx context.Context) error {
	return a.execAll(ctx, "drop", database.DropStatements(database.Postgres, a.tables))
}

// Clear deletes every row but keeps the schema
func (a *Admin) Clear(ctx context.Context) error {
	return a.execAll(ctx, "clear", database.ClearStatements(a.tables))
}

// Ping checks connectivity
func (a *Admin) Ping(ctx context.Context) error {
	return a.pool.Ping(ctx)
}

// Close releases the pool
func (a *Admin) Close() error {
	a.pool.Close()
	return nil
}

func (a *Admin) execAll(ctx context.Context, op string, stmts []string) error {
	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, stmt := range stmts {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}
	return nil
}
