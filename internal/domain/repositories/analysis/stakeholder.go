package analysis

import (
	"context"

	"analysisdesk/internal/domain/models/analysis"
)

// StakeholderRepository defines data access operations for stakeholders
type StakeholderRepository interface {
	Create(ctx context.Context, stakeholder *analysis.Stakeholder) error
	GetByID(ctx context.Context, id int64) (*analysis.Stakeholder, error)

	// List retrieves all stakeholders ordered by id DESC
	List(ctx context.Context) ([]analysis.Stakeholder, error)

	// ListByProject retrieves the stakeholders of one project ordered by id DESC
	ListByProject(ctx context.Context, projectID int64) ([]analysis.Stakeholder, error)

	Update(ctx context.Context, stakeholder *analysis.Stakeholder) error
	Delete(ctx context.Context, id int64) error

	CountByProject(ctx context.Context, projectID int64) (int64, error)

	// ClearProcessReferences nulls process_id and subprocess_id on stakeholders that point at the
	// process or at any of its subprocesses. Returns the number of stakeholders touched.
	ClearProcessReferences(ctx context.Context, processID int64) (int64, error)

	// ClearSubprocessReferences nulls subprocess_id on stakeholders that point at the subprocess
	ClearSubprocessReferences(ctx context.Context, subprocessID int64) (int64, error)
}
