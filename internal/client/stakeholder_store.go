package client

import (
	"context"
	"fmt"
)

// StakeholderStore mirrors the stakeholders of one project
type StakeholderStore struct {
	api          *APIClient
	projectID    string
	stakeholders *Collection[Stakeholder]
}

// NewStakeholderStore creates an empty store scoped to projectID
func NewStakeholderStore(api *APIClient, projectID string) *StakeholderStore {
	return &StakeholderStore{
		api:          api,
		projectID:    projectID,
		stakeholders: NewCollection(func(s Stakeholder) string { return s.ID }),
	}
}

// ProjectID returns the project the store is scoped to
func (s *StakeholderStore) ProjectID() string {
	return s.projectID
}

// Stakeholders returns the mirrored stakeholders in order
func (s *StakeholderStore) Stakeholders() []Stakeholder {
	return s.stakeholders.Items()
}

// Get returns a mirrored stakeholder by ID
func (s *StakeholderStore) Get(id string) (Stakeholder, bool) {
	return s.stakeholders.Get(id)
}

// Load replaces the collection with the project's stakeholders
func (s *StakeholderStore) Load(ctx context.Context) error {
	pid, err := parseID(s.projectID)
	if err != nil {
		return err
	}

	wire, err := s.api.ListStakeholders(ctx, pid)
	if err != nil {
		return fmt.Errorf("failed to load stakeholders: %w", err)
	}

	stakeholders := make([]Stakeholder, 0, len(wire))
	for i := range wire {
		stakeholders = append(stakeholders, StakeholderFromWire(&wire[i]))
	}

	s.stakeholders.Reset(stakeholders)
	return nil
}

// Create creates a stakeholder in the store's project and appends the canonical record
func (s *StakeholderStore) Create(ctx context.Context, in NewStakeholder) (Stakeholder, error) {
	body, err := StakeholderToWire(s.projectID, in)
	if err != nil {
		return Stakeholder{}, err
	}

	created, err := s.api.CreateStakeholder(ctx, body)
	if err != nil {
		return Stakeholder{}, err
	}

	stakeholder := StakeholderFromWire(created)
	s.stakeholders.Append(stakeholder)
	return stakeholder, nil
}

// Update applies a partial update and replaces the local record with the server's
func (s *StakeholderStore) Update(ctx context.Context, id string, patch StakeholderPatch) (Stakeholder, error) {
	sid, err := parseID(id)
	if err != nil {
		return Stakeholder{}, err
	}
	body, err := StakeholderPatchToWire(patch)
	if err != nil {
		return Stakeholder{}, err
	}

	updated, err := s.api.UpdateStakeholder(ctx, sid, body)
	if err != nil {
		return Stakeholder{}, err
	}

	stakeholder := StakeholderFromWire(updated)
	s.stakeholders.Replace(stakeholder)
	return stakeholder, nil
}

// Delete deletes a stakeholder and removes it from the collection
func (s *StakeholderStore) Delete(ctx context.Context, id string) error {
	sid, err := parseID(id)
	if err != nil {
		return err
	}

	if err := s.api.DeleteStakeholder(ctx, sid); err != nil {
		return err
	}

	s.stakeholders.Remove(id)
	return nil
}
