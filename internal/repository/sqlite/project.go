package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"analysisdesk/internal/domain"
	models "analysisdesk/internal/domain/models/analysis"
	analysisRepo "analysisdesk/internal/domain/repositories/analysis"
)

const projectColumns = `id, name, description, start_date, status, color, created_at, updated_at`

// ProjectRepository implements analysisRepo.ProjectRepository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) analysisRepo.ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, description, start_date, status, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, r.db.tables.Projects)

	result, err := r.db.exec(ctx).ExecContext(ctx, query,
		project.Name,
		project.Description,
		project.StartDate,
		string(project.Status),
		project.Color,
		formatTime(project.CreatedAt),
		formatTime(project.UpdatedAt),
	)
	if err != nil {
		return mapWriteError(err, "create", "project")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read project id: %w", err)
	}
	project.ID = id

	return nil
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = ?`, projectColumns, r.db.tables.Projects)

	project, err := scanProject(r.db.exec(ctx).QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("project", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return project, nil
}

// List retrieves all projects, newest id first
func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY id DESC`, projectColumns, r.db.tables.Projects)

	rows, err := r.db.exec(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *project)
	}

	return projects, rows.Err()
}

// Update persists every editable column of the project
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = ?, description = ?, start_date = ?, status = ?, color = ?, updated_at = ?
		WHERE id = ?
	`, r.db.tables.Projects)

	result, err := r.db.exec(ctx).ExecContext(ctx, query,
		project.Name,
		project.Description,
		project.StartDate,
		string(project.Status),
		project.Color,
		formatTime(project.UpdatedAt),
		project.ID,
	)
	if err != nil {
		return mapWriteError(err, "update", "project")
	}

	return requireAffected(result, "project", project.ID)
}

// Delete removes a project; processes, subprocesses and stakeholders cascade
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, r.db.tables.Projects)

	result, err := r.db.exec(ctx).ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return requireAffected(result, "project", id)
}

// Stats counts projects per status in a single statement
func (r *ProjectRepository) Stats(ctx context.Context) (*models.ProjectStats, error) {
	query := fmt.Sprintf(`
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0)
		FROM %s
	`, r.db.tables.Projects)

	var stats models.ProjectStats
	err := r.db.exec(ctx).QueryRowContext(ctx, query,
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
		return nil, fmt.Errorf("failed to compute project stats: %w", err)
	}

	return &stats, nil
}

func scanProject(row scanner) (*models.Project, error) {
	var (
		project            models.Project
		status             string
		createdAt, updated string
	)
	err := row.Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&project.StartDate,
		&status,
		&project.Color,
		&createdAt,
		&updated,
	)
	if err != nil {
		return nil, err
	}
	project.Status = models.ProjectStatus(status)
	if project.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if project.UpdatedAt, err = parseTime(updated); err != nil {
		return nil, err
	}
	return &project, nil
}

// requireAffected turns a zero-row update or delete into a not-found error
func requireAffected(result sql.Result, resourceType string, id int64) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return domain.NewNotFound(resourceType, id)
	}
	return nil
}

func countQuery(ctx context.Context, db *DB, query string, args ...any) (int64, error) {
	var n int64
	if err := db.exec(ctx).QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
