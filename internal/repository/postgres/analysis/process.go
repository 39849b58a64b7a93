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

const processColumns = `id, project_id, name, description, color, weight, created_at, updated_at`

// PostgresProcessRepository implements the ProcessRepository interface
type PostgresProcessRepository struct {
	pool   *pgxpool.Pool
	tables *database.TableNames
}

// NewProcessRepository creates a new process repository
func NewProcessRepository(config *postgres.RepositoryConfig) analysisRepo.ProcessRepository {
	return &PostgresProcessRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

func (r *PostgresProcessRepository) Create(ctx context.Context, p *models.Process) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (project_id, name, description, color, weight, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, r.tables.Processes)

	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		p.ProjectID,
		p.Name,
		p.Description,
		p.Color,
		p.Weight,
		p.CreatedAt,
		p.UpdatedAt,
	).Scan(&p.ID)

	if err != nil {
		return postgres.MapWriteError(err, "create", "process")
	}

	return nil
}

func (r *PostgresProcessRepository) GetByID(ctx context.Context, id int64) (*models.Process, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, processColumns, r.tables.Processes)

	executor := postgres.GetExecutor(ctx, r.pool)
	p, err := scanProcess(executor.QueryRow(ctx, query, id))
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, domain.NewNotFound("process", id)
		}
		return nil, fmt.Errorf("get process: %w", err)
	}

	return p, nil
}

func (r *PostgresProcessRepository) ListByProject(ctx context.Context, projectID int64) ([]models.Process, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE project_id = $1 ORDER BY id DESC`, processColumns, r.tables.Processes)

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}
	defer rows.Close()

	processes := []models.Process{}
	for rows.Next() {
		p, err := scanProcess(rows)
		if err != nil {
			return nil, fmt.Errorf("scan process: %w", err)
		}
		processes = append(processes, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate processes: %w", err)
	}

	return processes, nil
}

func (r *PostgresProcessRepository) Update(ctx context.Context, p *models.Process) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, description = $2, color = $3, weight = $4, updated_at = $5
		WHERE id = $6
	`, r.tables.Processes)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		p.Name,
		p.Description,
		p.Color,
		p.Weight,
		p.UpdatedAt,
		p.ID,
	)
	if err != nil {
		return postgres.MapWriteError(err, "update", "process")
	}

	if result.RowsAffected() == 0 {
		return domain.NewNotFound("process", p.ID)
	}

	return nil
}

func (r *PostgresProcessRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Processes)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete process: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.NewNotFound("process", id)
	}

	return nil
}

func (r *PostgresProcessRepository) CountByProject(ctx context.Context, projectID int64) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE project_id = $1`, r.tables.Processes)

	var n int64
	executor := postgres.GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, projectID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count processes: %w", err)
	}
	return n, nil
}

func scanProcess(row postgres.Scanner) (*models.Process, error) {
	var p models.Process
	err := row.Scan(
		&p.ID,
		&p.ProjectID,
		&p.Name,
		&p.Description,
		&p.Color,
		&p.Weight,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return &p, nil
}
