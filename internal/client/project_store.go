package client

import (
	"context"
	"fmt"

	models "analysisdesk/internal/domain/models/analysis"
)

// ProjectStore mirrors the server's projects. The local collection changes only
// after the server confirms an operation, and always takes the server's record.
type ProjectStore struct {
	api      *APIClient
	projects *Collection[Project]
}

// NewProjectStore creates an empty project store
func NewProjectStore(api *APIClient) *ProjectStore {
	return &ProjectStore{
		api:      api,
		projects: NewCollection(func(p Project) string { return p.ID }),
	}
}

// Projects returns the mirrored projects in order
func (s *ProjectStore) Projects() []Project {
	return s.projects.Items()
}

// Get returns a mirrored project by ID
func (s *ProjectStore) Get(id string) (Project, bool) {
	return s.projects.Get(id)
}

// Load replaces the collection with the server's project list
func (s *ProjectStore) Load(ctx context.Context) error {
	wire, err := s.api.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	projects := make([]Project, 0, len(wire))
	for i := range wire {
		p, err := ProjectFromWire(&wire[i])
		if err != nil {
			return err
		}
		projects = append(projects, p)
	}

	s.projects.Reset(projects)
	return nil
}

// Create creates a project and appends the canonical record
func (s *ProjectStore) Create(ctx context.Context, in NewProject) (Project, error) {
	body, err := ProjectToWire(in)
	if err != nil {
		return Project{}, err
	}

	created, err := s.api.CreateProject(ctx, body)
	if err != nil {
		return Project{}, err
	}

	project, err := ProjectFromWire(created)
	if err != nil {
		return Project{}, err
	}

	s.projects.Append(project)
	return project, nil
}

// Update applies a partial update and replaces the local record with the server's
func (s *ProjectStore) Update(ctx context.Context, id string, patch ProjectPatch) (Project, error) {
	pid, err := parseID(id)
	if err != nil {
		return Project{}, err
	}
	body, err := ProjectPatchToWire(patch)
	if err != nil {
		return Project{}, err
	}

	updated, err := s.api.UpdateProject(ctx, pid, body)
	if err != nil {
		return Project{}, err
	}

	project, err := ProjectFromWire(updated)
	if err != nil {
		return Project{}, err
	}

	s.projects.Replace(project)
	return project, nil
}

// Delete deletes a project and removes it from the collection
func (s *ProjectStore) Delete(ctx context.Context, id string) error {
	pid, err := parseID(id)
	if err != nil {
		return err
	}

	if err := s.api.DeleteProject(ctx, pid); err != nil {
		return err
	}

	s.projects.Remove(id)
	return nil
}

// Stats retrieves the per-status project counts from the server
func (s *ProjectStore) Stats(ctx context.Context) (*models.ProjectStats, error) {
	return s.api.ProjectStats(ctx)
}
