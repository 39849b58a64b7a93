package analysis

import (
	"context"

	"analysisdesk/internal/domain/models/analysis"
)

// CreateStakeholderRequest represents a request to create a stakeholder.
// Absent ProcessID/SubprocessID are stored as NULL.
type CreateStakeholderRequest struct {
	ProjectID    int64
	ProcessID    *int64
	SubprocessID *int64
	FullName     string
	Role         string
	Area         string
	Contact      string
	Notes        *string
	Color        string
}

// UpdateStakeholderRequest represents a partial update.
// ProjectID is immutable and therefore absent.
type UpdateStakeholderRequest struct {
	ProcessID    analysis.Patch[int64]
	SubprocessID analysis.Patch[int64]
	FullName     analysis.Patch[string]
	Role         analysis.Patch[string]
	Area         analysis.Patch[string]
	Contact      analysis.Patch[string]
	Notes        analysis.Patch[string]
	Color        analysis.Patch[string]
}

// StakeholderService defines business logic operations for stakeholders
type StakeholderService interface {
	CreateStakeholder(ctx context.Context, req *CreateStakeholderRequest) (*analysis.Stakeholder, error)
	GetStakeholder(ctx context.Context, id int64) (*analysis.Stakeholder, error)

	// ListStakeholders retrieves every stakeholder, most recently created first
	ListStakeholders(ctx context.Context) ([]analysis.Stakeholder, error)

	// ListStakeholdersByProject retrieves the stakeholders of one project
	ListStakeholdersByProject(ctx context.Context, projectID int64) ([]analysis.Stakeholder, error)

	UpdateStakeholder(ctx context.Context, id int64, req *UpdateStakeholderRequest) (*analysis.Stakeholder, error)
	DeleteStakeholder(ctx context.Context, id int64) error
}
