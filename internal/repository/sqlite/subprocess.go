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

const subprocessColumns = `id, process_id, name, description, created_at, updated_at`

// SubprocessRepository implements analysisRepo.SubprocessRepository for SQLite
type SubprocessRepository struct {
	db *DB
}

// NewSubprocessRepository creates a new SubprocessRepository
func NewSubprocessRepository(db *DB) analysisRepo.SubprocessRepository {
	return &SubprocessRepository{db: db}
}

func (r *SubprocessRepository) Create(ctx context.Context, s *models.Subprocess) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (process_id, name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, r.db.tables.Subprocesses)

	result, err := r.db.exec(ctx).ExecContext(ctx, query,
		s.ProcessID,
		s.Name,
		s.Description,
		formatTime(s.CreatedAt),
		formatTime(s.UpdatedAt),
	)
	if err != nil {
		return mapWriteError(err, "create", "subprocess")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read subprocess id: %w", err)
	}
	s.ID = id

	return nil
}

func (r *SubprocessRepository) GetByID(ctx context.Context, id int64) (*models.Subprocess, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = ?`, subprocessColumns, r.db.tables.Subprocesses)

	s, err := scanSubprocess(r.db.exec(ctx).QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("subprocess", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subprocess: %w", err)
	}

	return s, nil
}

func (r *SubprocessRepository) ListByProcess(ctx context.Context, processID int64) ([]models.Subprocess, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE process_id = ? ORDER BY id DESC`, subprocessColumns, r.db.tables.Subprocesses)

	rows, err := r.db.exec(ctx).QueryContext(ctx, query, processID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subprocesses: %w", err)
	}
	defer rows.Close()

	subprocesses := []models.Subprocess{}
	for rows.Next() {
		s, err := scanSubprocess(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subprocess: %w", err)
		}
		subprocesses = append(subprocesses, *s)
	}

	return subprocesses, rows.Err()
}

func (r *SubprocessRepository) Update(ctx context.Context, s *models.Subprocess) error {
	query := fmt.Sprintf(`UPDATE %s SET name = ?, description = ?, updated_at = ? WHERE id = ?`, r.db.tables.Subprocesses)

	result, err := r.db.exec(ctx).ExecContext(ctx, query, s.Name, s.Description, formatTime(s.UpdatedAt), s.ID)
	if err != nil {
		return mapWriteError(err, "update", "subprocess")
	}

	return requireAffected(result, "subprocess", s.ID)
}

func (r *SubprocessRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, r.db.tables.Subprocesses)

	result, err := r.db.exec(ctx).ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete subprocess: %w", err)
	}

	return requireAffected(result, "subprocess", id)
}

func (r *SubprocessRepository) CountByProject(ctx context.Context, projectID int64) (int64, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM %s s
		JOIN %s p ON p.id = s.process_id
		WHERE p.project_id = ?
	`, r.db.tables.Subprocesses, r.db.tables.Processes)

	n, err := countQuery(ctx, r.db, query, projectID)
	if err != nil {
		return 0, fmt.Errorf("failed to count subprocesses: %w", err)
	}
	return n, nil
}

func scanSubprocess(row scanner) (*models.Subprocess, error) {
	var (
		s                  models.Subprocess
		createdAt, updated string
	)
	err := row.Scan(
		&s.ID,
		&s.ProcessID,
		&s.Name,
		&s.Description,
		&createdAt,
		&updated,
	)
	if err != nil {
		return nil, err
	}
	if s.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if s.UpdatedAt, err = parseTime(updated); err != nil {
		return nil, err
	}
	return &s, nil
}
