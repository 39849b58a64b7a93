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

const projectColumns = `id, name, description, to_char(start_date, 'YYYY-MM-DD'), status, color, created_at, updated_at`

// PostgresProjectRepository implements the ProjectRepository interface
type PostgresProjectRepository struct {
	pool   *pgxpool.Pool
	tables *database.TableNames
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(config *postgres.RepositoryConfig) analysisRepo.ProjectRepository {
	return &PostgresProjectRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create creates a new project
func (r *PostgresProjectRepository) Create(ctx context.Context, project *models.Project) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, description, start_date, status, color, created_at, updated_at)
		VALUES ($1, $2, $3::date, $4, $5, $6, $7)
		RETURNING id
	`, r.tables.Projects)

	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		project.Name,
		project.Description,
		project.StartDate,
		string(project.Status),
		project.Color,
		project.CreatedAt,
		project.UpdatedAt,
	).Scan(&project.ID)

	if err != nil {
		return postgres.MapWriteError(err, "create", "project")
	}

	return nil
}

// GetByID retrieves a project by ID
func (r *PostgresProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, projectColumns, r.tables.Projects)

	executor := postgres.GetExecutor(ctx, r.pool)
	project, err := scanProject(executor.QueryRow(ctx, query, id))
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, domain.NewNotFound("project", id)
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	return project, nil
}

// List retrieves all projects ordered by id DESC
func (r *PostgresProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY id DESC`, projectColumns, r.tables.Projects)

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, *project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	return projects, nil
}

// Update persists every editable column of the project
func (r *PostgresProjectRepository) Update(ctx context.Context, project *models.Project) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, description = $2, start_date = $3::date, status = $4, color = $5, updated_at = $6
		WHERE id = $7
	`, r.tables.Projects)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		project.Name,
		project.Description,
		project.StartDate,
		string(project.Status),
		project.Color,
		project.UpdatedAt,
		project.ID,
	)
	if err != nil {
		return postgres.MapWriteError(err, "update", "project")
	}

	if result.RowsAffected() == 0 {
		return domain.NewNotFound("project", project.ID)
	}

	return nil
}

// Delete removes a project; processes, subprocesses and stakeholders cascade
func (r *PostgresProjectRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Projects)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.NewNotFound("project", id)
	}

	return nil
}

// Stats counts projects per status. A single statement keeps every count on the same snapshot,
// so the per-status counts always add up to the total.
func (r *PostgresProjectRepository) Stats(ctx context.Context) (*models.ProjectStats, error) {
	query := fmt.Sprintf(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = $1),
			COUNT(*) FILTER (WHERE status = $2),
			COUNT(*) FILTER (WHERE status = $3),
			COUNT(*) FILTER (WHERE status = $4)
		FROM %s
	`, r.tables.Projects)

	var stats models.ProjectStats
	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		string(models.StatusPlanning),
		string(models.StatusInProgress),
		string(models.StatusPaused),
		string(models.StatusCompleted),
	).Scan(
		&stats.Total,
		&stats.Planning,
		&stats.InProgress,
		&stats.Paused,
		&stats.Completed,
	)
	if err != nil {
		return nil, fmt.Errorf("project stats: %w", err)
	}

	return &stats, nil
}

func scanProject(row postgres.Scanner) (*models.Project, error) {
	var project models.Project
	var status string
	err := row.Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&project.StartDate,
		&status,
		&project.Color,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	project.Status = models.ProjectStatus(status)
	project.CreatedAt = project.CreatedAt.UTC()
	project.UpdatedAt = project.UpdatedAt.UTC()
	return &project, nil
}
