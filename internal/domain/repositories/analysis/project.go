package analysis

import (
	"context"

	"analysisdesk/internal/domain/models/analysis"
)

// ProjectRepository defines data access operations for projects
type ProjectRepository interface {
	// Create inserts a project and fills in its generated ID
	Create(ctx context.Context, project *analysis.Project) error

	// GetByID retrieves a project by ID
	GetByID(ctx context.Context, id int64) (*analysis.Project, error)

	// List retrieves all projects ordered by id DESC
	List(ctx context.Context) ([]analysis.Project, error)

	// Update persists every editable column of the project
	Update(ctx context.Context, project *analysis.Project) error

	// Delete removes a project; dependents cascade at the store level
	Delete(ctx context.Context, id int64) error

	// Stats counts projects per status in a single statement
	Stats(ctx context.Context) (*analysis.ProjectStats, error)
}
