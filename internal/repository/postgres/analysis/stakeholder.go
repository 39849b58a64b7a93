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

const stakeholderColumns = `id, project_id, process_id, subprocess_id, full_name, role, area, contact, notes, color, created_at, updated_at`

// PostgresStakeholderRepository implements the StakeholderRepository interface
type PostgresStakeholderRepository struct {
	pool   *pgxpool.Pool
	tables *database.TableNames
}

// NewStakeholderRepository creates a new stakeholder repository
func NewStakeholderRepository(config *postgres.RepositoryConfig) analysisRepo.StakeholderRepository {
	return &PostgresStakeholderRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

func (r *PostgresStakeholderRepository) Create(ctx context.Context, s *models.Stakeholder) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (project_id, process_id, subprocess_id, full_name, role, area, contact, notes, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`, r.tables.Stakeholders)

	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		s.ProjectID,
		s.ProcessID,
		s.SubprocessID,
		s.FullName,
		s.Role,
		s.Area,
		s.Contact,
		s.Notes,
		s.Color,
		s.CreatedAt,
		s.UpdatedAt,
	).Scan(&s.ID)

	if err != nil {
		return postgres.MapWriteError(err, "create", "stakeholder")
	}

	return nil
}

func (r *PostgresStakeholderRepository) GetByID(ctx context.Context, id int64) (*models.Stakeholder, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, stakeholderColumns, r.tables.Stakeholders)

	executor := postgres.GetExecutor(ctx, r.pool)
	s, err := scanStakeholder(executor.QueryRow(ctx, query, id))
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, domain.NewNotFound("stakeholder", id)
		}
		return nil, fmt.Errorf("get stakeholder: %w", err)
	}

	return s, nil
}

func (r *PostgresStakeholderRepository) List(ctx context.Context) ([]models.Stakeholder, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY id DESC`, stakeholderColumns, r.tables.Stakeholders)
	return r.list(ctx, query)
}

func (r *PostgresStakeholderRepository) ListByProject(ctx context.Context, projectID int64) ([]models.Stakeholder, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE project_id = $1 ORDER BY id DESC`, stakeholderColumns, r.tables.Stakeholders)
	return r.list(ctx, query, projectID)
}

func (r *PostgresStakeholderRepository) list(ctx context.Context, query string, args ...any) ([]models.Stakeholder, error) {
	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stakeholders: %w", err)
	}
	defer rows.Close()

	stakeholders := []models.Stakeholder{}
	for rows.Next() {
		s, err := scanStakeholder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stakeholder: %w", err)
		}
		stakeholders = append(stakeholders, *s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stakeholders: %w", err)
	}

	return stakeholders, nil
}

func (r *PostgresStakeholderRepository) Update(ctx context.Context, s *models.Stakeholder) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET process_id = $1, subprocess_id = $2, full_name = $3, role = $4, area = $5,
		    contact = $6, notes = $7, color = $8, updated_at = $9
		WHERE id = $10
	`, r.tables.Stakeholders)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		s.ProcessID,
		s.SubprocessID,
		s.FullName,
		s.Role,
		s.Area,
		s.Contact,
		s.Notes,
		s.Color,
		s.UpdatedAt,
		s.ID,
	)
	if err != nil {
		return postgres.MapWriteError(err, "update", "stakeholder")
	}

	if result.RowsAffected() == 0 {
		return domain.NewNotFound("stakeholder", s.ID)
	}

	return nil
}

func (r *PostgresStakeholderRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Stakeholders)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete stakeholder: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.NewNotFound("stakeholder", id)
	}

	return nil
}

func (r *PostgresStakeholderRepository) CountByProject(ctx context.Context, projectID int64) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE project_id = $1`, r.tables.Stakeholders)

	var n int64
	executor := postgres.GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, projectID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count stakeholders: %w", err)
	}
	return n, nil
}

func (r *PostgresStakeholderRepository) ClearProcessReferences(ctx context.Context, processID int64) (int64, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET process_id = NULL, subprocess_id = NULL
		WHERE process_id = $1
		   OR subprocess_id IN (SELECT id FROM %s WHERE process_id = $1)
	`, r.tables.Stakeholders, r.tables.Subprocesses)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, processID)
	if err != nil {
		return 0, fmt.Errorf("clear process references: %w", err)
	}
	return result.RowsAffected(), nil
}

func (r *PostgresStakeholderRepository) ClearSubprocessReferences(ctx context.Context, subprocessID int64) (int64, error) {
	query := fmt.Sprintf(`UPDATE %s SET subprocess_id = NULL WHERE subprocess_id = $1`, r.tables.Stakeholders)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, subprocessID)
	if err != nil {
		return 0, fmt.Errorf("clear subprocess references: %w", err)
	}
	return result.RowsAffected(), nil
}

func scanStakeholder(row postgres.Scanner) (*models.Stakeholder, error) {
	var s models.Stakeholder
	err := row.Scan(
		&s.ID,
		&s.ProjectID,
		&s.ProcessID,
		&s.SubprocessID,
		&s.FullName,
		&s.Role,
		&s.Area,
		&s.Contact,
		&s.Notes,
		&s.Color,
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
