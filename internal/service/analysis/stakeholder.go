package analysis

import (
	"context"
	"log/slog"
	"strings"

	"analysisdesk/internal/config"
	models "analysisdesk/internal/domain/models/analysis"
	analysisRepo "analysisdesk/internal/domain/repositories/analysis"
	analysisSvc "analysisdesk/internal/domain/services/analysis"
	"analysisdesk/internal/metrics"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// stakeholderService implements the StakeholderService interface
type stakeholderService struct {
	stakeholderRepo analysisRepo.StakeholderRepository
	validator       *ResourceValidator
	logger          *slog.Logger
}

// NewStakeholderService creates a new stakeholder service
func NewStakeholderService(
	stakeholderRepo analysisRepo.StakeholderRepository,
	validator *ResourceValidator,
	logger *slog.Logger,
) analysisSvc.StakeholderService {
	return &stakeholderService{
		stakeholderRepo: stakeholderRepo,
		validator:       validator,
		logger:          logger,
	}
}

// CreateStakeholder creates a stakeholder. Absent process/subprocess ids are stored as NULL.
func (s *stakeholderService) CreateStakeholder(ctx context.Context, req *analysisSvc.CreateStakeholderRequest) (*models.Stakeholder, error) {
	ts := now()
	stakeholder := &models.Stakeholder{
		ProjectID:    req.ProjectID,
		ProcessID:    req.ProcessID,
		SubprocessID: req.SubprocessID,
		FullName:     strings.TrimSpace(req.FullName),
		Role:         strings.TrimSpace(req.Role),
		Area:         strings.TrimSpace(req.Area),
		Contact:      strings.TrimSpace(req.Contact),
		Notes:        normalizeOptional(req.Notes),
		Color:        strings.TrimSpace(req.Color),
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	if err := validateStakeholder(stakeholder); err != nil {
		return nil, err
	}

	// Referenced records must exist and belong together
	if err := s.validator.ValidateProject(ctx, stakeholder.ProjectID); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateScope(ctx, stakeholder.ProjectID, stakeholder.ProcessID, stakeholder.SubprocessID); err != nil {
		return nil, err
	}

	if err := s.stakeholderRepo.Create(ctx, stakeholder); err != nil {
		return nil, err
	}
	metrics.RecordMutation("stakeholder", metrics.OpCreate)

	s.logger.Info("stakeholder created",
		"id", stakeholder.ID,
		"project_id", stakeholder.ProjectID,
		"process_id", stakeholder.ProcessID,
	)

	return stakeholder, nil
}

// GetStakeholder retrieves a stakeholder by ID
func (s *stakeholderService) GetStakeholder(ctx context.Context, id int64) (*models.Stakeholder, error) {
	return s.stakeholderRepo.GetByID(ctx, id)
}

// ListStakeholders retrieves every stakeholder, most recently created first
func (s *stakeholderService) ListStakeholders(ctx context.Context) ([]models.Stakeholder, error) {
	return s.stakeholderRepo.List(ctx)
}

// ListStakeholdersByProject retrieves the stakeholders of one project.
// An unknown project yields an empty list.
func (s *stakeholderService) ListStakeholdersByProject(ctx context.Context, projectID int64) ([]models.Stakeholder, error) {
	return s.stakeholderRepo.ListByProject(ctx, projectID)
}

// UpdateStakeholder merges the present fields of req over the stored stakeholder.
// Clearing the process also clears the subprocess unless the request sets one explicitly.
func (s *stakeholderService) UpdateStakeholder(ctx context.Context, id int64, req *analysisSvc.UpdateStakeholderRequest) (*models.Stakeholder, error) {
	existing, err := s.stakeholderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	merged.ProcessID = req.ProcessID.ApplyNullable(existing.ProcessID)
	merged.SubprocessID = req.SubprocessID.ApplyNullable(existing.SubprocessID)
	if req.ProcessID.IsCleared() && req.SubprocessID.IsUnchanged() {
		merged.SubprocessID = nil
	}
	merged.FullName = strings.TrimSpace(req.FullName.Apply(existing.FullName))
	merged.Role = strings.TrimSpace(req.Role.Apply(existing.Role))
	merged.Area = strings.TrimSpace(req.Area.Apply(existing.Area))
	merged.Contact = strings.TrimSpace(req.Contact.Apply(existing.Contact))
	merged.Notes = normalizeOptional(req.Notes.ApplyNullable(existing.Notes))
	merged.Color = strings.TrimSpace(req.Color.Apply(existing.Color))

	if err := validateStakeholder(&merged); err != nil {
		return nil, err
	}

	if merged.SameContent(existing) {
		return existing, nil
	}

	if err := s.validator.ValidateScope(ctx, merged.ProjectID, merged.ProcessID, merged.SubprocessID); err != nil {
		return nil, err
	}

	merged.UpdatedAt = now()
	if err := s.stakeholderRepo.Update(ctx, &merged); err != nil {
		return nil, err
	}
	metrics.RecordMutation("stakeholder", metrics.OpUpdate)

	s.logger.Info("stakeholder updated",
		"id", merged.ID,
		"project_id", merged.ProjectID,
		"process_id", merged.ProcessID,
	)

	return &merged, nil
}

// DeleteStakeholder deletes a stakeholder
func (s *stakeholderService) DeleteStakeholder(ctx context.Context, id int64) error {
	if err := s.stakeholderRepo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.RecordMutation("stakeholder", metrics.OpDelete)

	s.logger.Info("stakeholder deleted", "id", id)
	return nil
}

// validateStakeholder validates a fully merged stakeholder
func validateStakeholder(st *models.Stakeholder) error {
	return validationError(validation.ValidateStruct(st,
		validation.Field(&st.ProjectID, validation.Required, validation.Min(int64(1))),
		validation.Field(&st.ProcessID, validation.NilOrNotEmpty, validation.Min(int64(1))),
		validation.Field(&st.SubprocessID, validation.NilOrNotEmpty, validation.Min(int64(1))),
		validation.Field(&st.FullName, requiredText(config.MaxStakeholderNameLength)...),
		validation.Field(&st.Role, requiredText(config.MaxStakeholderRoleLength)...),
		validation.Field(&st.Area, requiredText(config.MaxStakeholderAreaLength)...),
		validation.Field(&st.Contact, requiredText(config.MaxStakeholderContactLength)...),
		validation.Field(&st.Notes, validation.NilOrNotEmpty),
		validation.Field(&st.Color, requiredText(config.MaxColorLength)...),
	))
}
