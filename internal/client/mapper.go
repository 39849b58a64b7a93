package client

import (
	"fmt"
	"strconv"

	models "analysisdesk/internal/domain/models/analysis"
)

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func parseID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid id %q", id)
	}
	return n, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatOptionalID(id *int64) *string {
	if id == nil {
		return nil
	}
	s := formatID(*id)
	return &s
}

// ProjectFromWire maps a canonical server record to its client shape
func ProjectFromWire(p *models.Project) (Project, error) {
	status, err := StatusFromWire(p.Status)
	if err != nil {
		return Project{}, err
	}

	return Project{
		ID:          formatID(p.ID),
		Name:        p.Name,
		Description: deref(p.Description),
		StartDate:   deref(p.StartDate),
		Status:      status,
		Color:       deref(p.Color),
	}, nil
}

// StakeholderFromWire maps a canonical server record to its client shape
func StakeholderFromWire(s *models.Stakeholder) Stakeholder {
	return Stakeholder{
		ID:           formatID(s.ID),
		ProjectID:    formatID(s.ProjectID),
		ProcessID:    formatOptionalID(s.ProcessID),
		SubprocessID: formatOptionalID(s.SubprocessID),
		FullName:     s.FullName,
		Role:         s.Role,
		Area:         s.Area,
		Contact:      s.Contact,
		Notes:        deref(s.Notes),
		Color:        s.Color,
	}
}

// wirePatch accumulates only the keys a patch intends to send
type wirePatch map[string]any

func putString(w wirePatch, key string, p models.Patch[string]) {
	switch {
	case p.IsCleared():
		w[key] = nil
	case p.IsSet():
		v, _ := p.Value()
		w[key] = v
	}
}

func putID(w wirePatch, key string, p models.Patch[string]) error {
	switch {
	case p.IsCleared():
		w[key] = nil
	case p.IsSet():
		v, _ := p.Value()
		id, err := parseID(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		w[key] = id
	}
	return nil
}

// projectCreateBody is the wire body of a project create
type projectCreateBody struct {
	Name        string               `json:"name"`
	Description *string              `json:"description,omitempty"`
	StartDate   *string              `json:"start_date,omitempty"`
	Status      models.ProjectStatus `json:"status,omitempty"`
	Color       *string              `json:"color,omitempty"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ProjectToWire maps a client create input to its wire body
func ProjectToWire(in NewProject) (any, error) {
	body := projectCreateBody{
		Name:        in.Name,
		Description: optional(in.Description),
		StartDate:   optional(in.StartDate),
		Color:       optional(in.Color),
	}
	if in.Status != "" {
		status, err := StatusToWire(in.Status)
		if err != nil {
			return nil, err
		}
		body.Status = status
	}
	return body, nil
}

// ProjectPatchToWire maps a client patch to the wire keys it intends to change
func ProjectPatchToWire(p ProjectPatch) (map[string]any, error) {
	w := wirePatch{}
	putString(w, "name", p.Name)
	putString(w, "description", p.Description)
	putString(w, "start_date", p.StartDate)
	putString(w, "color", p.Color)

	switch {
	case p.Status.IsCleared():
		return nil, fmt.Errorf("status cannot be cleared")
	case p.Status.IsSet():
		v, _ := p.Status.Value()
		status, err := StatusToWire(v)
		if err != nil {
			return nil, err
		}
		w["status"] = status
	}
	return w, nil
}

// stakeholderCreateBody is the wire body of a stakeholder create
type stakeholderCreateBody struct {
	ProjectID    int64   `json:"project_id"`
	ProcessID    *int64  `json:"process_id,omitempty"`
	SubprocessID *int64  `json:"subprocess_id,omitempty"`
	FullName     string  `json:"full_name"`
	Role         string  `json:"role"`
	Area         string  `json:"area"`
	Contact      string  `json:"contact"`
	Notes        *string `json:"notes,omitempty"`
	Color        string  `json:"color"`
}

func optionalID(id string) (*int64, error) {
	if id == "" {
		return nil, nil
	}
	n, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// StakeholderToWire maps a client create input to its wire body
func StakeholderToWire(projectID string, in NewStakeholder) (any, error) {
	pid, err := parseID(projectID)
	if err != nil {
		return nil, fmt.Errorf("project_id: %w", err)
	}
	processID, err := optionalID(in.ProcessID)
	if err != nil {
		return nil, fmt.Errorf("process_id: %w", err)
	}
	subprocessID, err := optionalID(in.SubprocessID)
	if err != nil {
		return nil, fmt.Errorf("subprocess_id: %w", err)
	}

	return stakeholderCreateBody{
		ProjectID:    pid,
		ProcessID:    processID,
		SubprocessID: subprocessID,
		FullName:     in.FullName,
		Role:         in.Role,
		Area:         in.Area,
		Contact:      in.Contact,
		Notes:        optional(in.Notes),
		Color:        in.Color,
	}, nil
}

// StakeholderPatchToWire maps a client patch to the wire keys it intends to change
func StakeholderPatchToWire(p StakeholderPatch) (map[string]any, error) {
	w := wirePatch{}
	if err := putID(w, "process_id", p.ProcessID); err != nil {
		return nil, err
	}
	if err := putID(w, "subprocess_id", p.SubprocessID); err != nil {
		return nil, err
	}
	putString(w, "full_name", p.FullName)
	putString(w, "role", p.Role)
	putString(w, "area", p.Area)
	putString(w, "contact", p.Contact)
	putString(w, "notes", p.Notes)
	putString(w, "color", p.Color)
	return w, nil
}
