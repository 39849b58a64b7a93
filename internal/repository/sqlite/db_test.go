package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"analysisdesk/internal/database"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:", database.NewTableNames("test_"))
	require.NoError(t, err, "failed to create test database")

	err = db.Migrate(context.Background())
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully and are idempotent
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	for _, table := range db.Tables().DependencyOrder() {
		var name string
		err := db.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}

	require.NoError(t, db.Migrate(ctx))
}

func TestForeignKeysEnabled(t *testing.T) {
	db := NewTestDB(t)

	var enabled int
	err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled)
	require.NoError(t, err)
	require.Equal(t, 1, enabled)
}

func TestForeignKeysOnFreshConnections(t *testing.T) {
	db, err := New(filepath.Join(t.TempDir(), "fk.db"), database.NewTableNames("test_"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// with no idle connections every query runs on a newly opened one
	db.SetMaxIdleConns(0)

	for i := 0; i < 3; i++ {
		var enabled int
		require.NoError(t, db.QueryRow("PRAGMA foreign_keys").Scan(&enabled))
		require.Equal(t, 1, enabled, "query %d", i)
	}
}

func TestWithForeignKeys(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{dsn: ":memory:", want: ":memory:?_pragma=foreign_keys(1)"},
		{dsn: "file:data.db?cache=shared", want: "file:data.db?cache=shared&_pragma=foreign_keys(1)"},
		{dsn: "data.db?_pragma=foreign_keys(0)", want: "data.db?_pragma=foreign_keys(0)"},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			require.Equal(t, tt.want, withForeignKeys(tt.dsn))
		})
	}
}

func TestDropAndClear(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewProjectRepository(db)
	require.NoError(t, repo.Create(ctx, newProject("Keep schema")))

	require.NoError(t, db.Clear(ctx))
	projects, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, projects)

	require.NoError(t, db.Drop(ctx))
	_, err = repo.List(ctx)
	require.Error(t, err)
}
