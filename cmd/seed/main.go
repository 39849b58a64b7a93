// Package main is the admin CLI for schema management and sample data.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"analysisdesk/internal/config"
	"analysisdesk/internal/repository"
	"analysisdesk/internal/seed"
	"analysisdesk/internal/server"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	fixtureFile string
	clearFirst  bool
	printOnly   bool
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Schema and sample data management",
	Long: `Manage the analysis store schema and load sample data.

The store is selected with STORE_DRIVER (postgres or sqlite) and TABLE_PREFIX,
read from the environment or a .env file.

Examples:
  # Create tables
  seed migrate

  # Show the DDL without connecting
  seed migrate --print

  # Load the embedded sample projects
  seed run

  # Load a custom fixture file after clearing existing rows
  seed run --file fixtures.yaml --clear`,
	SilenceUsage: true,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create tables if they do not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		if printOnly {
			script, err := repository.SchemaScript(config.Load())
			if err != nil {
				return err
			}
			fmt.Print(script)
			return nil
		}
		return withStore(cmd.Context(), false, func(ctx context.Context, store *repository.Store, _ *slog.Logger) error {
			if err := store.Admin.Migrate(ctx); err != nil {
				return err
			}
			fmt.Println("schema ready")
			return nil
		})
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Load sample data through the service layer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd.Context(), clearFirst, func(ctx context.Context, store *repository.Store, logger *slog.Logger) error {
			fixtures, err := loadFixtures()
			if err != nil {
				return err
			}

			if err := store.Admin.Migrate(ctx); err != nil {
				return err
			}
			if clearFirst {
				if err := store.Admin.Clear(ctx); err != nil {
					return err
				}
			}

			svc := server.NewServices(store, logger)
			result, err := seed.NewSeeder(svc.Projects, svc.Processes, svc.Stakeholders, logger).Seed(ctx, fixtures)
			if err != nil {
				return err
			}

			fmt.Printf("seeded %d projects, %d processes, %d subprocesses, %d stakeholders\n",
				result.Projects, result.Processes, result.Subprocesses, result.Stakeholders)
			return nil
		})
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every row, keeping the schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd.Context(), true, func(ctx context.Context, store *repository.Store, _ *slog.Logger) error {
			if err := store.Admin.Clear(ctx); err != nil {
				return err
			}
			fmt.Println("data cleared")
			return nil
		})
	},
}

var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Drop every table",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd.Context(), true, func(ctx context.Context, store *repository.Store, _ *slog.Logger) error {
			if err := store.Admin.Drop(ctx); err != nil {
				return err
			}
			fmt.Println("tables dropped")
			return nil
		})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	migrateCmd.Flags().BoolVar(&printOnly, "print", false, "print the schema DDL instead of applying it")
	runCmd.Flags().StringVarP(&fixtureFile, "file", "f", "", "fixture YAML file (defaults to the embedded sample data)")
	runCmd.Flags().BoolVar(&clearFirst, "clear", false, "delete existing rows before seeding")

	rootCmd.AddCommand(migrateCmd, runCmd, clearCmd, dropCmd)
}

func loadFixtures() (*seed.Fixtures, error) {
	if fixtureFile == "" {
		return seed.LoadDefaultFixtures()
	}
	return seed.LoadFixturesFromFile(fixtureFile)
}

// withStore opens the configured store for one command.
// Destructive commands are refused in production.
func withStore(ctx context.Context, destructive bool, fn func(context.Context, *repository.Store, *slog.Logger) error) error {
	cfg := config.Load()
	if destructive && cfg.Environment == "prod" {
		return fmt.Errorf("refusing to run a destructive command in the prod environment")
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	logger.Debug("using store",
		"environment", cfg.Environment,
		"driver", cfg.StoreDriver,
		"table_prefix", cfg.TablePrefix,
	)

	store, err := repository.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer closeQuietly(store)

	return fn(ctx, store, logger)
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}

func main() {
	// Load .env file (silently ignore if it doesn't exist)
	_ = godotenv.Load()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
