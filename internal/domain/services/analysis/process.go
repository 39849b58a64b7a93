package analysis

import (
	"context"

	"analysisdesk/internal/domain/models/analysis"
)

// CreateProcessRequest represents a request to create a process
type CreateProcessRequest struct {
	ProjectID   int64
	Name        string
	Description *string
	Color       *string
	Weight      *int
}

// UpdateProcessRequest represents a partial update of a process
type UpdateProcessRequest struct {
	Name        analysis.Patch[string]
	Description analysis.Patch[string]
	Color       analysis.Patch[string]
	Weight      analysis.Patch[int]
}

// CreateSubprocessRequest represents a request to create a subprocess
type CreateSubprocessRequest struct {
	ProcessID   int64
	Name        string
	Description *string
}

// UpdateSubprocessRequest represents a partial update of a subprocess
type UpdateSubprocessRequest struct {
	Name        analysis.Patch[string]
	Description analysis.Patch[string]
}

// ProcessService defines business logic operations for processes and their subprocesses
type ProcessService interface {
	CreateProcess(ctx context.Context, req *CreateProcessRequest) (*analysis.Process, error)
	GetProcess(ctx context.Context, id int64) (*analysis.Process, error)
	ListProcesses(ctx context.Context, projectID int64) ([]analysis.Process, error)
	UpdateProcess(ctx context.Context, id int64, req *UpdateProcessRequest) (*analysis.Process, error)

	// DeleteProcess nulls stakeholder references to the process and its subprocesses, then deletes it
	DeleteProcess(ctx context.Context, id int64) error

	CreateSubprocess(ctx context.Context, req *CreateSubprocessRequest) (*analysis.Subprocess, error)
	GetSubprocess(ctx context.Context, id int64) (*analysis.Subprocess, error)
	ListSubprocesses(ctx context.Context, processID int64) ([]analysis.Subprocess, error)
	UpdateSubprocess(ctx context.Context, id int64, req *UpdateSubprocessRequest) (*analysis.Subprocess, error)

	// DeleteSubprocess nulls stakeholder references to the subprocess, then deletes it
	DeleteSubprocess(ctx context.Context, id int64) error
}
