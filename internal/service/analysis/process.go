package analysis

import (
	"context"
	"log/slog"
	"strings"

	"analysisdesk/internal/config"
	models "analysisdesk/internal/domain/models/analysis"
	"analysisdesk/internal/domain/repositories"
	analysisRepo "analysisdesk/internal/domain/repositories/analysis"
	analysisSvc "analysisdesk/internal/domain/services/analysis"
	"analysisdesk/internal/metrics"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// processService implements the ProcessService interface
type processService struct {
	processRepo     analysisRepo.ProcessRepository
	subprocessRepo  analysisRepo.SubprocessRepository
	stakeholderRepo analysisRepo.StakeholderRepository
	validator       *ResourceValidator
	txManager       repositories.TransactionManager
	logger          *slog.Logger
}

// NewProcessService creates a new process service
func NewProcessService(
	processRepo analysisRepo.ProcessRepository,
	subprocessRepo analysisRepo.SubprocessRepository,
	stakeholderRepo analysisRepo.StakeholderRepository,
	validator *ResourceValidator,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) analysisSvc.ProcessService {
	return &processService{
		processRepo:     processRepo,
		subprocessRepo:  subprocessRepo,
		stakeholderRepo: stakeholderRepo,
		validator:       validator,
		txManager:       txManager,
		logger:          logger,
	}
}

// CreateProcess creates a process within an existing project
func (s *processService) CreateProcess(ctx context.Context, req *analysisSvc.CreateProcessRequest) (*models.Process, error) {
	weight := models.DefaultProcessWeight
	if req.Weight != nil {
		weight = *req.Weight
	}

	ts := now()
	process := &models.Process{
		ProjectID:   req.ProjectID,
		Name:        strings.TrimSpace(req.Name),
		Description: normalizeOptional(req.Description),
		Color:       normalizeOptional(req.Color),
		Weight:      weight,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	if err := validateProcess(process); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateProject(ctx, process.ProjectID); err != nil {
		return nil, err
	}

	if err := s.processRepo.Create(ctx, process); err != nil {
		return nil, err
	}
	metrics.RecordMutation("process", metrics.OpCreate)

	s.logger.Info("process created",
		"id", process.ID,
		"project_id", process.ProjectID,
		"name", process.Name,
	)

	return process, nil
}

// GetProcess retrieves a process by ID
func (s *processService) GetProcess(ctx context.Context, id int64) (*models.Process, error) {
	return s.processRepo.GetByID(ctx, id)
}

// ListProcesses retrieves the processes of a project, most recently created first
func (s *processService) ListProcesses(ctx context.Context, projectID int64) ([]models.Process, error) {
	return s.processRepo.ListByProject(ctx, projectID)
}

// UpdateProcess merges the present fields of req over the stored process
func (s *processService) UpdateProcess(ctx context.Context, id int64, req *analysisSvc.UpdateProcessRequest) (*models.Process, error) {
	existing, err := s.processRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	merged.Name = strings.TrimSpace(req.Name.Apply(existing.Name))
	merged.Description = normalizeOptional(req.Description.ApplyNullable(existing.Description))
	merged.Color = normalizeOptional(req.Color.ApplyNullable(existing.Color))
	merged.Weight = req.Weight.Apply(existing.Weight)

	if err := validateProcess(&merged); err != nil {
		return nil, err
	}

	if merged.SameContent(existing) {
		return existing, nil
	}

	merged.UpdatedAt = now()
	if err := s.processRepo.Update(ctx, &merged); err != nil {
		return nil, err
	}
	metrics.RecordMutation("process", metrics.OpUpdate)

	s.logger.Info("process updated",
		"id", merged.ID,
		"name", merged.Name,
	)

	return &merged, nil
}

// DeleteProcess nulls stakeholder references to the process and its subprocesses, then deletes it.
// Subprocesses cascade at the store level.
func (s *processService) DeleteProcess(ctx context.Context, id int64) error {
	var detached int64

	err := s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		if _, err := s.processRepo.GetByID(ctx, id); err != nil {
			return err
		}

		n, err := s.stakeholderRepo.ClearProcessReferences(ctx, id)
		if err != nil {
			return err
		}
		detached = n

		return s.processRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	metrics.RecordMutation("process", metrics.OpDelete)

	s.logReferentialWarning("process", id, detached)
	return nil
}

// CreateSubprocess creates a subprocess under an existing process
func (s *processService) CreateSubprocess(ctx context.Context, req *analysisSvc.CreateSubprocessRequest) (*models.Subprocess, error) {
	ts := now()
	subprocess := &models.Subprocess{
		ProcessID:   req.ProcessID,
		Name:        strings.TrimSpace(req.Name),
		Description: normalizeOptional(req.Description),
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	if err := validateSubprocess(subprocess); err != nil {
		return nil, err
	}

	// The parent is addressed by the request path, so a missing parent is NotFound
	if _, err := s.processRepo.GetByID(ctx, subprocess.ProcessID); err != nil {
		return nil, err
	}

	if err := s.subprocessRepo.Create(ctx, subprocess); err != nil {
		return nil, err
	}
	metrics.RecordMutation("subprocess", metrics.OpCreate)

	s.logger.Info("subprocess created",
		"id", subprocess.ID,
		"process_id", subprocess.ProcessID,
		"name", subprocess.Name,
	)

	return subprocess, nil
}

// GetSubprocess retrieves a subprocess by ID
func (s *processService) GetSubprocess(ctx context.Context, id int64) (*models.Subprocess, error) {
	return s.subprocessRepo.GetByID(ctx, id)
}

// ListSubprocesses retrieves the subprocesses of a process, most recently created first
func (s *processService) ListSubprocesses(ctx context.Context, processID int64) ([]models.Subprocess, error) {
	return s.subprocessRepo.ListByProcess(ctx, processID)
}

// UpdateSubprocess merges the present fields of req over the stored subprocess
func (s *processService) UpdateSubprocess(ctx context.Context, id int64, req *analysisSvc.UpdateSubprocessRequest) (*models.Subprocess, error) {
	existing, err := s.subprocessRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	merged.Name = strings.TrimSpace(req.Name.Apply(existing.Name))
	merged.Description = normalizeOptional(req.Description.ApplyNullable(existing.Description))

	if err := validateSubprocess(&merged); err != nil {
		return nil, err
	}

	if merged.SameContent(existing) {
		return existing, nil
	}

	merged.UpdatedAt = now()
	if err := s.subprocessRepo.Update(ctx, &merged); err != nil {
		return nil, err
	}
	metrics.RecordMutation("subprocess", metrics.OpUpdate)

	s.logger.Info("subprocess updated",
		"id", merged.ID,
		"name", merged.Name,
	)

	return &merged, nil
}

// DeleteSubprocess nulls stakeholder references to the subprocess, then deletes it
func (s *processService) DeleteSubprocess(ctx context.Context, id int64) error {
	var detached int64

	err := s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		if _, err := s.subprocessRepo.GetByID(ctx, id); err != nil {
			return err
		}

		n, err := s.stakeholderRepo.ClearSubprocessReferences(ctx, id)
		if err != nil {
			return err
		}
		detached = n

		return s.subprocessRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	metrics.RecordMutation("subprocess", metrics.OpDelete)

	s.logReferentialWarning("subprocess", id, detached)
	return nil
}

func (s *processService) logReferentialWarning(resource string, id, detached int64) {
	if detached == 0 {
		s.logger.Info(resource+" deleted", "id", id)
		return
	}

	metrics.RecordReferentialWarning(resource)
	s.logger.Warn(resource+" deleted, stakeholder references cleared",
		"id", id,
		"stakeholders", detached,
	)
}

func validateProcess(p *models.Process) error {
	return validationError(validation.ValidateStruct(p,
		validation.Field(&p.ProjectID, validation.Required, validation.Min(int64(1))),
		validation.Field(&p.Name, requiredText(config.MaxProcessNameLength)...),
		validation.Field(&p.Description, validation.NilOrNotEmpty),
		validation.Field(&p.Color, optionalText(config.MaxColorLength)...),
		validation.Field(&p.Weight, validation.Required, validation.Min(1)),
	))
}

func validateSubprocess(sp *models.Subprocess) error {
	return validationError(validation.ValidateStruct(sp,
		validation.Field(&sp.ProcessID, validation.Required, validation.Min(int64(1))),
		validation.Field(&sp.Name, requiredText(config.MaxProcessNameLength)...),
		validation.Field(&sp.Description, validation.NilOrNotEmpty),
	))
}
