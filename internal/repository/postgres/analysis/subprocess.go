package analysis

import (
	"context"
	"fmt"

	"analysisdesk/internal/database"
	"analysisdesk/internal/domain"
	models "analysisdesk/internal/domain/models/analysis"
	analysisRepo "analysisdesk/internal/domain/repositories/analysis"
	"analysisdesk/internal/repository/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
)

const subprocessColumns = `id, process_id, name, description, created_at, updated_at`

// PostgresSubprocessRepository implements the SubprocessRepository interface
type PostgresSubprocessRepository struct {
	pool   *pgxpool.Pool
	tables *database.TableNames
}

// NewSubprocessRepository creates a new subprocess repository
func NewSubprocessRepository(config *postgres.RepositoryConfig) analysisRepo.SubprocessRepository {
	return &PostgresSubprocessRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

func (r *PostgresSubprocessRepository) Create(ctx context.Context, s *models.Subprocess) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (process_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, r.tables.Subprocesses)

	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		s.ProcessID,
		s.Name,
		s.Description,
		s.CreatedAt,
		s.UpdatedAt,
	).Scan(&s.ID)

	if err != nil {
		return postgres.MapWriteError(err, "create", "subprocess")
	}

	return nil
}

func (r *PostgresSubprocessRepository) GetByID(ctx context.Context, id int64) (*models.Subprocess, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, subprocessColumns, r.tables.Subprocesses)

	executor := postgres.GetExecutor(ctx, r.pool)
	s, err := scanSubprocess(executor.QueryRow(ctx, query, id))
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, domain.NewNotFound("subprocess", id)
		}
		return nil, fmt.Errorf("get subprocess: %w", err)
	}

	return s, nil
}

func (r *PostgresSubprocessRepository) ListByProcess(ctx context.Context, processID int64) ([]models.Subprocess, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE process_id = $1 ORDER BY id DESC`, subprocessColumns, r.tables.Subprocesses)

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, processID)
	if err != nil {
		return nil, fmt.Errorf("list subprocesses: %w", err)
	}
	defer rows.Close()

	subprocesses := []models.Subprocess{}
	for rows.Next() {
		s, err := scanSubprocess(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subprocess: %w", err)
		}
		subprocesses = append(subprocesses, *s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subprocesses: %w", err)
	}

	return subprocesses, nil
}

func (r *PostgresSubprocessRepository) Update(ctx context.Context, s *models.Subprocess) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, description = $2, updated_at = $3
		WHERE id = $4
	`, r.tables.Subprocesses)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, s.Name, s.Description, s.UpdatedAt, s.ID)
	if err != nil {
		return postgres.MapWriteError(err, "update", "subprocess")
	}

	if result.RowsAffected() == 0 {
		return domain.NewNotFound("subprocess", s.ID)
	}

	return nil
}

func (r *PostgresSubprocessRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Subprocesses)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete subprocess: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.NewNotFound("subprocess", id)
	}

	return nil
}

func (r *PostgresSubprocessRepository) CountByProject(ctx context.Context, projectID int64) (int64, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM %s s
		JOIN %s p ON p.id = s.process_id
		WHERE p.project_id = $1
	`, r.tables.Subprocesses, r.tables.Processes)

	var n int64
	executor := postgres.GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, projectID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count subprocesses: %w", err)
	}
	return n, nil
}

func scanSubprocess(row postgres.Scanner) (*models.Subprocess, error) {
	var s models.Subprocess
	err := row.Scan(
		&s.ID,
		&s.ProcessID,
		&s.Name,
		&s.Description,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.CreatedAt = s.CreatedAt.UTC()
	s.UpdatedAt = s.UpdatedAt.UTC()
	return &s, nil
}
