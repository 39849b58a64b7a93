package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"analysisdesk/internal/config"
	"analysisdesk/internal/domain"
	models "analysisdesk/internal/domain/models/analysis"
	"analysisdesk/internal/domain/repositories"
	analysisRepo "analysisdesk/internal/domain/repositories/analysis"
	analysisSvc "analysisdesk/internal/domain/services/analysis"
	"analysisdesk/internal/metrics"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/sync/errgroup"
)

// projectService implements the ProjectService interface
type projectService struct {
	projectRepo     analysisRepo.ProjectRepository
	stakeholderRepo analysisRepo.StakeholderRepository
	processRepo     analysisRepo.ProcessRepository
	subprocessRepo  analysisRepo.SubprocessRepository
	txManager       repositories.TransactionManager
	logger          *slog.Logger
}

// NewProjectService creates a new project service
func NewProjectService(
	projectRepo analysisRepo.ProjectRepository,
	stakeholderRepo analysisRepo.StakeholderRepository,
	processRepo analysisRepo.ProcessRepository,
	subprocessRepo analysisRepo.SubprocessRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) analysisSvc.ProjectService {
	return &projectService{
		projectRepo:     projectRepo,
		stakeholderRepo: stakeholderRepo,
		processRepo:     processRepo,
		subprocessRepo:  subprocessRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// CreateProject creates a new project
func (s *projectService) CreateProject(ctx context.Context, req *analysisSvc.CreateProjectRequest) (*models.Project, error) {
	status := models.DefaultProjectStatus
	if req.Status != nil {
		status = *req.Status
	}

	ts := now()
	project := &models.Project{
		Name:        strings.TrimSpace(req.Name),
		Description: normalizeOptional(req.Description),
		StartDate:   normalizeOptional(req.StartDate),
		Status:      status,
		Color:       normalizeOptional(req.Color),
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	if err := validateProject(project); err != nil {
		return nil, err
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	metrics.RecordMutation("project", metrics.OpCreate)

	s.logger.Info("project created",
		"id", project.ID,
		"name", project.Name,
		"status", project.Status,
	)

	return project, nil
}

// GetProject retrieves a project by ID
func (s *projectService) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

// ListProjects retrieves all projects, most recently created first
func (s *projectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	return s.projectRepo.List(ctx)
}

// UpdateProject merges the present fields of req over the stored project.
// A request that changes nothing returns the stored record without writing.
func (s *projectService) UpdateProject(ctx context.Context, id int64, req *analysisSvc.UpdateProjectRequest) (*models.Project, error) {
	existing, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	merged.Name = strings.TrimSpace(req.Name.Apply(existing.Name))
	merged.Description = normalizeOptional(req.Description.ApplyNullable(existing.Description))
	merged.StartDate = normalizeOptional(req.StartDate.ApplyNullable(existing.StartDate))
	merged.Status = req.Status.Apply(existing.Status)
	merged.Color = normalizeOptional(req.Color.ApplyNullable(existing.Color))

	if err := validateProject(&merged); err != nil {
		return nil, err
	}

	if merged.SameContent(existing) {
		return existing, nil
	}

	merged.UpdatedAt = now()
	if err := s.projectRepo.Update(ctx, &merged); err != nil {
		return nil, err
	}
	metrics.RecordMutation("project", metrics.OpUpdate)

	s.logger.Info("project updated",
		"id", merged.ID,
		"name", merged.Name,
		"status", merged.Status,
	)

	return &merged, nil
}

// DeleteProject deletes a project. Its processes, subprocesses and stakeholders are removed
// by the store's cascade; how many were affected is reported as a referential warning.
func (s *projectService) DeleteProject(ctx context.Context, id int64) error {
	warning := &domain.ReferentialWarning{
		ResourceType: "project",
		ResourceID:   id,
		Dependents:   map[string]int64{},
	}

	err := s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		// Verify project exists first (provides better error message)
		if _, err := s.projectRepo.GetByID(ctx, id); err != nil {
			return err
		}

		counts, err := s.countDependents(ctx, id)
		if err != nil {
			return err
		}
		warning.Dependents["stakeholders"] = counts.Stakeholders
		warning.Dependents["processes"] = counts.Processes
		warning.Dependents["subprocesses"] = counts.Subprocesses

		return s.projectRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	metrics.RecordMutation("project", metrics.OpDelete)

	if warning.HasDependents() {
		metrics.RecordReferentialWarning("project")
		s.logger.Warn("project deleted with dependents",
			"id", id,
			"warning", warning.Error(),
		)
	} else {
		s.logger.Info("project deleted", "id", id)
	}

	return nil
}

// GetStats counts projects per status
func (s *projectService) GetStats(ctx context.Context) (*models.ProjectStats, error) {
	stats, err := s.projectRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	if !stats.Consistent() {
		return nil, fmt.Errorf("project stats inconsistent: %+v", *stats)
	}

	return stats, nil
}

// GetOverview returns a project with counts of its dependent records
func (s *projectService) GetOverview(ctx context.Context, id int64) (*models.ProjectOverview, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	overview, err := s.countDependents(ctx, id)
	if err != nil {
		return nil, err
	}
	overview.Project = project

	return overview, nil
}

// countDependents fetches the three dependent counts concurrently.
// Inside a transaction they run one at a time since a single connection cannot serve concurrent queries.
func (s *projectService) countDependents(ctx context.Context, id int64) (*models.ProjectOverview, error) {
	var overview models.ProjectOverview

	g, gctx := errgroup.WithContext(ctx)
	if repositories.GetTx(ctx) != nil {
		g.SetLimit(1)
	}
	g.Go(func() error {
		n, err := s.stakeholderRepo.CountByProject(gctx, id)
		overview.Stakeholders = n
		return err
	})
	g.Go(func() error {
		n, err := s.processRepo.CountByProject(gctx, id)
		overview.Processes = n
		return err
	})
	g.Go(func() error {
		n, err := s.subprocessRepo.CountByProject(gctx, id)
		overview.Subprocesses = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &overview, nil
}

// validateProject validates a fully merged project
func validateProject(p *models.Project) error {
	statuses := make([]interface{}, len(models.ProjectStatuses))
	for i, st := range models.ProjectStatuses {
		statuses[i] = st
	}

	return validationError(validation.ValidateStruct(p,
		validation.Field(&p.Name, requiredText(config.MaxProjectNameLength)...),
		validation.Field(&p.Description, validation.NilOrNotEmpty),
		validation.Field(&p.StartDate, validation.NilOrNotEmpty, validation.Date(config.DateLayout)),
		validation.Field(&p.Status, validation.Required, validation.In(statuses...)),
		validation.Field(&p.Color, optionalText(config.MaxColorLength)...),
	))
}
