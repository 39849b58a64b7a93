package client

import (
	models "analysisdesk/internal/domain/models/analysis"
)

// Project is the UI-facing shape of a project. Absent optional values are empty strings.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	Status      Status `json:"status"`
	Color       string `json:"color"`
}

// NewProject is the input for creating a project. Empty optional strings are omitted.
type NewProject struct {
	Name        string
	Description string
	StartDate   string
	Status      Status // empty lets the server apply its default
	Color       string
}

// ProjectPatch lists the project fields to change. Unchanged fields are not sent.
type ProjectPatch struct {
	Name        models.Patch[string]
	Description models.Patch[string]
	StartDate   models.Patch[string]
	Status      models.Patch[Status]
	Color       models.Patch[string]
}

// Stakeholder is the UI-facing shape of a stakeholder.
// ProcessID and SubprocessID are nil when the stakeholder is not scoped to a process.
type Stakeholder struct {
	ID           string  `json:"id"`
	ProjectID    string  `json:"projectId"`
	ProcessID    *string `json:"processId"`
	SubprocessID *string `json:"subprocessId"`
	FullName     string  `json:"fullName"`
	Role         string  `json:"role"`
	Area         string  `json:"area"`
	Contact      string  `json:"contact"`
	Notes        string  `json:"notes"`
	Color        string  `json:"color"`
}

// NewStakeholder is the input for creating a stakeholder in the store's project
type NewStakeholder struct {
	ProcessID    string
	SubprocessID string
	FullName     string
	Role         string
	Area         string
	Contact      string
	Notes        string
	Color        string
}

// StakeholderPatch lists the stakeholder fields to change.
// Cleared associations are sent as explicit nulls.
type StakeholderPatch struct {
	ProcessID    models.Patch[string]
	SubprocessID models.Patch[string]
	FullName     models.Patch[string]
	Role         models.Patch[string]
	Area         models.Patch[string]
	Contact      models.Patch[string]
	Notes        models.Patch[string]
	Color        models.Patch[string]
}
