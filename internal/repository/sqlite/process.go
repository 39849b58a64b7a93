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

const processColumns = `id, project_id, name, description, color, weight, created_at, updated_at`

// ProcessRepository implements analysisRepo.ProcessRepository for SQLite
type ProcessRepository struct {
	db *DB
}

// NewProcessRepository creates a new ProcessRepository
func NewProcessRepository(db *DB) analysisRepo.ProcessRepository {
	return &ProcessRepository{db: db}
}

func (r *ProcessRepository) Create(ctx context.Context, p *models.Process) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (project_id, name, description, color, weight, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, r.db.tables.Processes)

	result, err := r.db.exec(ctx).ExecContext(ctx, query,
		p.ProjectID,
		p.Name,
		p.Description,
		p.Color,
		p.Weight,
		formatTime(p.CreatedAt),
		formatTime(p.UpdatedAt),
	)
	if err != nil {
		return mapWriteError(err, "create", "process")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read process id: %w", err)
	}
	p.ID = id

	return nil
}

func (r *ProcessRepository) GetByID(ctx context.Context, id int64) (*models.Process, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = ?`, processColumns, r.db.tables.Processes)

	p, err := scanProcess(r.db.exec(ctx).QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("process", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get process: %w", err)
	}

	return p, nil
}

func (r *ProcessRepository) ListByProject(ctx context.Context, projectID int64) ([]models.Process, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE project_id = ? ORDER BY id DESC`, processColumns, r.db.tables.Processes)

	rows, err := r.db.exec(ctx).QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}
	defer rows.Close()

	processes := []models.Process{}
	for rows.Next() {
		p, err := scanProcess(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan process: %w", err)
		}
		processes = append(processes, *p)
	}

	return processes, rows.Err()
}

func (r *ProcessRepository) Update(ctx context.Context, p *models.Process) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = ?, description = ?, color = ?, weight = ?, updated_at = ?
		WHERE id = ?
	`, r.db.tables.Processes)

	result, err := r.db.exec(ctx).ExecContext(ctx, query,
		p.Name,
		p.Description,
		p.Color,
		p.Weight,
		formatTime(p.UpdatedAt),
		p.ID,
	)
	if err != nil {
		return mapWriteError(err, "update", "process")
	}

	return requireAffected(result, "process", p.ID)
}

func (r *ProcessRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, r.db.tables.Processes)

	result, err := r.db.exec(ctx).ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete process: %w", err)
	}

	return requireAffected(result, "process", id)
}

func (r *ProcessRepository) CountByProject(ctx context.Context, projectID int64) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE project_id = ?`, r.db.tables.Processes)

	n, err := countQuery(ctx, r.db, query, projectID)
	if err != nil {
		return 0, fmt.Errorf("failed to count processes: %w", err)
	}
	return n, nil
}

func scanProcess(row scanner) (*models.Process, error) {
	var (
		p                  models.Process
		createdAt, updated string
	)
	err := row.Scan(
		&p.ID,
		&p.ProjectID,
		&p.Name,
		&p.Description,
		&p.Color,
		&p.Weight,
		&createdAt,
		&updated,
	)
	if err != nil {
		return nil, err
	}
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTime(updated); err != nil {
		return nil, err
	}
	return &p, nil
}
