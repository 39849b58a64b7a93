package analysis

import (
	"time"
)

// ProjectStatus is the persisted (wire) project status
type ProjectStatus string

const (
	StatusPlanning   ProjectStatus = "planning"
	StatusInProgress ProjectStatus = "in_progress"
	StatusPaused     ProjectStatus = "paused"
	StatusCompleted  ProjectStatus = "completed"

	// DefaultProjectStatus applies when a create request omits status
	DefaultProjectStatus = StatusInProgress
)

// ProjectStatuses lists every status in display order
var ProjectStatuses = []ProjectStatus{
	StatusPlanning,
	StatusInProgress,
	StatusPaused,
	StatusCompleted,
}

// IsValid reports whether s is one of the enumerated statuses
func (s ProjectStatus) IsValid() bool {
	for _, v := range ProjectStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Project is the top-level unit of analysis work
type Project struct {
	ID          int64         `json:"id" db:"id"`
	Name        string        `json:"name" db:"name"`
	Description *string       `json:"description" db:"description"`
	StartDate   *string       `json:"start_date" db:"start_date"` // YYYY-MM-DD
	Status      ProjectStatus `json:"status" db:"status"`
	Color       *string       `json:"color" db:"color"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" db:"updated_at"`
}

// SameContent reports whether the user-editable fields of p and o match
func (p *Project) SameContent(o *Project) bool {
	return p.Name == o.Name &&
		equalPtr(p.Description, o.Description) &&
		equalPtr(p.StartDate, o.StartDate) &&
		p.Status == o.Status &&
		equalPtr(p.Color, o.Color)
}

// ProjectStats holds per-status counts over the whole project collection
type ProjectStats struct {
	Total      int64 `json:"total"`
	Planning   int64 `json:"planning"`
	InProgress int64 `json:"in_progress"`
	Paused     int64 `json:"paused"`
	Completed  int64 `json:"completed"`
}

// Consistent reports whether the per-status counts add up to the total
func (s ProjectStats) Consistent() bool {
	return s.Total == s.Planning+s.InProgress+s.Paused+s.Completed
}

// ProjectOverview is a project together with counts of the records that depend on it
type ProjectOverview struct {
	Project      *Project `json:"project"`
	Stakeholders int64    `json:"stakeholders"`
	Processes    int64    `json:"processes"`
	Subprocesses int64    `json:"subprocesses"`
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
