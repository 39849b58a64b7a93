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

const stakeholderColumns = `id, project_id, process_id, subprocess_id, full_name, role, area, contact, notes, color, created_at, updated_at`

// StakeholderRepository implements analysisRepo.StakeholderRepository for SQLite
type StakeholderRepository struct {
	db *DB
}

// NewStakeholderRepository creates a new StakeholderRepository
func NewStakeholderRepository(db *DB) analysisRepo.StakeholderRepository {
	return &StakeholderRepository{db: db}
}

func (r *StakeholderRepository) Create(ctx context.Context, s *models.Stakeholder) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (project_id, process_id, subprocess_id, full_name, role, area, contact, notes, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.db.tables.Stakeholders)

	result, err := r.db.exec(ctx).ExecContext(ctx, query,
		s.ProjectID,
		s.ProcessID,
		s.SubprocessID,
		s.FullName,
		s.Role,
		s.Area,
		s.Contact,
		s.Notes,
		s.Color,
		formatTime(s.CreatedAt),
		formatTime(s.UpdatedAt),
	)
	if err != nil {
		return mapWriteError(err, "create", "stakeholder")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read stakeholder id: %w", err)
	}
	s.ID = id

	return nil
}

func (r *StakeholderRepository) GetByID(ctx context.Context, id int64) (*models.Stakeholder, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = ?`, stakeholderColumns, r.db.tables.Stakeholders)

	s, err := scanStakeholder(r.db.exec(ctx).QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("stakeholder", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stakeholder: %w", err)
	}

	return s, nil
}

func (r *StakeholderRepository) List(ctx context.Context) ([]models.Stakeholder, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY id DESC`, stakeholderColumns, r.db.tables.Stakeholders)
	return r.list(ctx, query)
}

func (r *StakeholderRepository) ListByProject(ctx context.Context, projectID int64) ([]models.Stakeholder, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE project_id = ? ORDER BY id DESC`, stakeholderColumns, r.db.tables.Stakeholders)
	return r.list(ctx, query, projectID)
}

func (r *StakeholderRepository) list(ctx context.Context, query string, args ...any) ([]models.Stakeholder, error) {
	rows, err := r.db.exec(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list stakeholders: %w", err)
	}
	defer rows.Close()

	stakeholders := []models.Stakeholder{}
	for rows.Next() {
		s, err := scanStakeholder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stakeholder: %w", err)
		}
		stakeholders = append(stakeholders, *s)
	}

	return stakeholders, rows.Err()
}

func (r *StakeholderRepository) Update(ctx context.Context, s *models.Stakeholder) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET process_id = ?, subprocess_id = ?, full_name = ?, role = ?, area = ?,
		    contact = ?, notes = ?, color = ?, updated_at = ?
		WHERE id = ?
	`, r.db.tables.Stakeholders)

	result, err := r.db.exec(ctx).ExecContext(ctx, query,
		s.ProcessID,
		s.SubprocessID,
		s.FullName,
		s.Role,
		s.Area,
		s.Contact,
		s.Notes,
		s.Color,
		formatTime(s.UpdatedAt),
		s.ID,
	)
	if err != nil {
		return mapWriteError(err, "update", "stakeholder")
	}

	return requireAffected(result, "stakeholder", s.ID)
}

func (r *StakeholderRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, r.db.tables.Stakeholders)

	result, err := r.db.exec(ctx).ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete stakeholder: %w", err)
	}

	return requireAffected(result, "stakeholder", id)
}

func (r *StakeholderRepository) CountByProject(ctx context.Context, projectID int64) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE project_id = ?`, r.db.tables.Stakeholders)

	n, err := countQuery(ctx, r.db, query, projectID)
	if err != nil {
		return 0, fmt.Errorf("failed to count stakeholders: %w", err)
	}
	return n, nil
}

func (r *StakeholderRepository) ClearProcessReferences(ctx context.Context, processID int64) (int64, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET process_id = NULL, subprocess_id = NULL
		WHERE process_id = ?
		   OR subprocess_id IN (SELECT id FROM %s WHERE process_id = ?)
	`, r.db.tables.Stakeholders, r.db.tables.Subprocesses)

	result, err := r.db.exec(ctx).ExecContext(ctx, query, processID, processID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear process references: %w", err)
	}
	return result.RowsAffected()
}

func (r *StakeholderRepository) ClearSubprocessReferences(ctx context.Context, subprocessID int64) (int64, error) {
	query := fmt.Sprintf(`UPDATE %s SET subprocess_id = NULL WHERE subprocess_id = ?`, r.db.tables.Stakeholders)

	result, err := r.db.exec(ctx).ExecContext(ctx, query, subprocessID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear subprocess references: %w", err)
	}
	return result.RowsAffected()
}

func scanStakeholder(row scanner) (*models.Stakeholder, error) {
	var (
		s                  models.Stakeholder
		createdAt, updated string
	)
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
