// Package repository opens the configured store and exposes its repositories behind the domain interfaces.
package repository

import (
	"context"
	"fmt"
	"log/slog"

	"analysisdesk/internal/config"
	"analysisdesk/internal/database"
	"analysisdesk/internal/domain/repositories"
	analysisRepo "analysisdesk/internal/domain/repositories/analysis"
	"analysisdesk/internal/repository/postgres"
	pgAnalysis "analysisdesk/internal/repository/postgres/analysis"
	"analysisdesk/internal/repository/sqlite"
)

// Admin runs schema-level operations against the store
type Admin interface {
	Migrate(ctx context.Context) error
	Drop(ctx context.Context) error
	Clear(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

// Store bundles every repository of one backing database
type Store struct {
	Driver       string
	Tables       *database.TableNames
	Projects     analysisRepo.ProjectRepository
	Stakeholders analysisRepo.StakeholderRepository
	Processes    analysisRepo.ProcessRepository
	Subprocesses analysisRepo.SubprocessRepository
	Tx           repositories.TransactionManager
	Admin        Admin
}

// Close releases the underlying connection(s)
func (s *Store) Close() error {
	return s.Admin.Close()
}

// Open connects to the store selected by cfg.StoreDriver
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	tables := database.NewTableNames(cfg.TablePrefix)

	switch cfg.StoreDriver {
	case config.DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the %s driver", config.DriverPostgres)
		}
		pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		repoConfig := &postgres.RepositoryConfig{Pool: pool, Tables: tables, Logger: logger}
		return &Store{
			Driver:       config.DriverPostgres,
			Tables:       tables,
			Projects:     pgAnalysis.NewProjectRepository(repoConfig),
			Stakeholders: pgAnalysis.NewStakeholderRepository(repoConfig),
			Processes:    pgAnalysis.NewProcessRepository(repoConfig),
			Subprocesses: pgAnalysis.NewSubprocessRepository(repoConfig),
			Tx:           postgres.NewTransactionManager(pool, logger),
			Admin:        postgres.NewAdmin(pool, tables),
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.New(cfg.SQLitePath, tables)
		if err != nil {
			return nil, err
		}
		return NewSQLiteStore(db, logger), nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// SchemaScript renders the DDL that Migrate runs for cfg without connecting
func SchemaScript(cfg *config.Config) (string, error) {
	tables := database.NewTableNames(cfg.TablePrefix)

	switch cfg.StoreDriver {
	case config.DriverPostgres:
		return database.Script(database.Schema(database.Postgres, tables)), nil
	case config.DriverSQLite:
		return database.Script(database.Schema(database.SQLite, tables)), nil
	default:
		return "", fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// NewSQLiteStore wraps an already opened SQLite database
func NewSQLiteStore(db *sqlite.DB, logger *slog.Logger) *Store {
	return &Store{
		Driver:       config.DriverSQLite,
		Tables:       db.Tables(),
		Projects:     sqlite.NewProjectRepository(db),
		Stakeholders: sqlite.NewStakeholderRepository(db),
		Processes:    sqlite.NewProcessRepository(db),
		Subprocesses: sqlite.NewSubprocessRepository(db),
		Tx:           sqlite.NewTransactionManager(db, logger),
		Admin:        db,
	}
}
