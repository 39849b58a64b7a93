package analysis

import (
	"context"

	"analysisdesk/internal/domain/models/analysis"
)

// CreateProjectRequest represents a request to create a project.
// Optional fields are nil when absent; Status defaults to in_progress.
type CreateProjectRequest struct {
	Name        string
	Description *string
	StartDate   *string
	Status      *analysis.ProjectStatus
	Color       *string
}

// UpdateProjectRequest represents a partial update; Unchanged fields keep their stored value
type UpdateProjectRequest struct {
	Name        analysis.Patch[string]
	Description analysis.Patch[string]
	StartDate   analysis.Patch[string]
	Status      analysis.Patch[analysis.ProjectStatus]
	Color       analysis.Patch[string]
}

// ProjectService defines business logic operations for projects
type ProjectService interface {
	CreateProject(ctx context.Context, req *CreateProjectRequest) (*analysis.Project, error)

	// GetProject retrieves a project by ID
	GetProject(ctx context.Context, id int64) (*analysis.Project, error)

	// ListProjects retrieves all projects, most recently created first
	ListProjects(ctx context.Context) ([]analysis.Project, error)

	// UpdateProject merges the present fields of req over the stored project
	UpdateProject(ctx context.Context, id int64, req *UpdateProjectRequest) (*analysis.Project, error)

	// DeleteProject removes a project; dependents are reported as a referential warning
	DeleteProject(ctx context.Context, id int64) error

	// GetStats counts projects per status
	GetStats(ctx context.Context) (*analysis.ProjectStats, error)

	// GetOverview returns a project with counts of its dependent records
	GetOverview(ctx context.Context, id int64) (*analysis.ProjectOverview, error)
}
