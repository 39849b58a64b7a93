package analysis

import (
	"time"
)

// DefaultProcessWeight applies when a create request omits weight
const DefaultProcessWeight = 1

// Process is a business process studied within a project
type Process struct {
	ID          int64     `json:"id" db:"id"`
	ProjectID   int64     `json:"project_id" db:"project_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	Color       *string   `json:"color" db:"color"`
	Weight      int       `json:"weight" db:"weight"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

func (p *Process) SameContent(o *Process) bool {
	return p.Name == o.Name &&
		equalPtr(p.Description, o.Description) &&
		equalPtr(p.Color, o.Color) &&
		p.Weight == o.Weight
}

// Subprocess is a step of a Process
type Subprocess struct {
	ID          int64     `json:"id" db:"id"`
	ProcessID   int64     `json:"process_id" db:"process_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

func (s *Subprocess) SameContent(o *Subprocess) bool {
	return s.Name == o.Name && equalPtr(s.Description, o.Description)
}
