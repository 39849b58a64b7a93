package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"analysisdesk/internal/database"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection together with the table names it serves
type DB struct {
	*sql.DB
	tables *database.TableNames
}

// foreignKeysPragma is applied by the driver to every connection it opens
const foreignKeysPragma = "_pragma=foreign_keys(1)"

// New opens a SQLite database. A single connection is kept open so that ":memory:"
// databases survive for the life of the DB and writers are serialized.
func New(dataSourceName string, tables *database.TableNames) (*DB, error) {
	db, err := sql.Open("sqlite", withForeignKeys(dataSourceName))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DB{DB: db, tables: tables}, nil
}

// withForeignKeys appends the foreign key pragma to the DSN query
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&" + foreignKeysPragma
	}
	return dsn + "?" + foreignKeysPragma
}

// Tables returns the table names this database was opened with
func (db *DB) Tables() *database.TableNames {
	return db.tables
}

// Migrate creates any missing tables and indexes
func (db *DB) Migrate(ctx context.Context) error {
	return db.execAll(ctx, "migrate", database.Schema(database.SQLite, db.tables))
}

// Drop removes every table
func (db *DB) Drop(ctx context.Context) error {
	return db.execAll(ctx, "drop", database.DropStatements(database.SQLite, db.tables))
}

// Clear deletes every row but keeps the schema
func (db *DB) Clear(ctx context.Context) error {
	return db.execAll(ctx, "clear", database.ClearStatements(db.tables))
}

// Ping checks connectivity
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

func (db *DB) execAll(ctx context.Context, op string, stmts []string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", op, err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}
	return nil
}
