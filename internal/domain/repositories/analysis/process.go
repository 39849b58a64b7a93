package analysis

import (
	"context"

	"analysisdesk/internal/domain/models/analysis"
)

// ProcessRepository defines data access operations for processes
type ProcessRepository interface {
	Create(ctx context.Context, process *analysis.Process) error
	GetByID(ctx context.Context, id int64) (*analysis.Process, error)
	ListByProject(ctx context.Context, projectID int64) ([]analysis.Process, error)
	Update(ctx context.Context, process *analysis.Process) error

	// Delete removes a process; its subprocesses cascade at the store level
	Delete(ctx context.Context, id int64) error

	CountByProject(ctx context.Context, projectID int64) (int64, error)
}

// SubprocessRepository defines data access operations for subprocesses
type SubprocessRepository interface {
	Create(ctx context.Context, subprocess *analysis.Subprocess) error
	GetByID(ctx context.Context, id int64) (*analysis.Subprocess, error)
	ListByProcess(ctx context.Context, processID int64) ([]analysis.Subprocess, error)
	Update(ctx context.Context, subprocess *analysis.Subprocess) error
	Delete(ctx context.Context, id int64) error

	// CountByProject counts subprocesses across every process of a project
	CountByProject(ctx context.Context, projectID int64) (int64, error)
}
