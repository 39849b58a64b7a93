package analysis

import (
	"time"
)

// Stakeholder is a person or role associated with a project and optionally a process/subprocess.
// ProcessID and SubprocessID carry no omitempty: an unscoped stakeholder serializes them as null.
type Stakeholder struct {
	ID           int64     `json:"id" db:"id"`
	ProjectID    int64     `json:"project_id" db:"project_id"`
	ProcessID    *int64    `json:"process_id" db:"process_id"`
	SubprocessID *int64    `json:"subprocess_id" db:"subprocess_id"`
	FullName     string    `json:"full_name" db:"full_name"`
	Role         string    `json:"role" db:"role"`
	Area         string    `json:"area" db:"area"`
	Contact      string    `json:"contact" db:"contact"`
	Notes        *string   `json:"notes" db:"notes"`
	Color        string    `json:"color" db:"color"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// SameContent reports whether the user-editable fields of s and o match
func (s *Stakeholder) SameContent(o *Stakeholder) bool {
	return equalPtr(s.ProcessID, o.ProcessID) &&
		equalPtr(s.SubprocessID, o.SubprocessID) &&
		s.FullName == o.FullName &&
		s.Role == o.Role &&
		s.Area == o.Area &&
		s.Contact == o.Contact &&
		equalPtr(s.Notes, o.Notes) &&
		s.Color == o.Color
}
