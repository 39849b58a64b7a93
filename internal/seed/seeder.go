package seed

import (
	"context"
	"fmt"
	"log/slog"

	analysisSvc "analysisdesk/internal/domain/services/analysis"
)

// Result counts the records a seed run created
type Result struct {
	Projects     int
	Processes    int
	Subprocesses int
	Stakeholders int
}

// Seeder creates fixture records through the services, so seeded data passes
// the same validation as API input.
type Seeder struct {
	projects     analysisSvc.ProjectService
	processes    analysisSvc.ProcessService
	stakeholders analysisSvc.StakeholderService
	logger       *slog.Logger
}

// NewSeeder creates a new seeder
func NewSeeder(
	projects analysisSvc.ProjectService,
	processes analysisSvc.ProcessService,
	stakeholders analysisSvc.StakeholderService,
	logger *slog.Logger,
) *Seeder {
	return &Seeder{
		projects:     projects,
		processes:    processes,
		stakeholders: stakeholders,
		logger:       logger,
	}
}

// Seed creates every fixture in order and stops at the first failure
func (s *Seeder) Seed(ctx context.Context, f *Fixtures) (*Result, error) {
	result := &Result{}

	for _, pf := range f.Projects {
		if err := s.seedProject(ctx, pf, result); err != nil {
			return result, fmt.Errorf("project %q: %w", pf.Name, err)
		}
	}

	s.logger.Info("seed complete",
		"projects", result.Projects,
		"processes", result.Processes,
		"subprocesses", result.Subprocesses,
		"stakeholders", result.Stakeholders,
	)
	return result, nil
}

func (s *Seeder) seedProject(ctx context.Context, pf ProjectFixture, result *Result) error {
	project, err := s.projects.CreateProject(ctx, &analysisSvc.CreateProjectRequest{
		Name:        pf.Name,
		Description: pf.Description,
		StartDate:   pf.StartDate,
		Status:      pf.Status,
		Color:       pf.Color,
	})
	if err != nil {
		return err
	}
	result.Projects++

	processIDs := make(map[string]int64, len(pf.Processes))
	subprocessIDs := make(map[string]int64)

	for _, proc := range pf.Processes {
		process, err := s.processes.CreateProcess(ctx, &analysisSvc.CreateProcessRequest{
			ProjectID:   project.ID,
			Name:        proc.Name,
			Description: proc.Description,
			Color:       proc.Color,
			Weight:      proc.Weight,
		})
		if err != nil {
			return fmt.Errorf("process %q: %w", proc.Name, err)
		}
		processIDs[proc.Name] = process.ID
		result.Processes++

		for _, sub := range proc.Subprocesses {
			subprocess, err := s.processes.CreateSubprocess(ctx, &analysisSvc.CreateSubprocessRequest{
				ProcessID:   process.ID,
				Name:        sub.Name,
				Description: sub.Description,
			})
			if err != nil {
				return fmt.Errorf("subprocess %q: %w", sub.Name, err)
			}
			subprocessIDs[subprocessKey(proc.Name, sub.Name)] = subprocess.ID
			result.Subprocesses++
		}
	}

	for _, st := range pf.Stakeholders {
		req := &analysisSvc.CreateStakeholderRequest{
			ProjectID: project.ID,
			FullName:  st.FullName,
			Role:      st.Role,
			Area:      st.Area,
			Contact:   st.Contact,
			Notes:     st.Notes,
			Color:     st.Color,
		}

		if st.Process != "" {
			id, ok := processIDs[st.Process]
			if !ok {
				return fmt.Errorf("stakeholder %q: unknown process %q", st.FullName, st.Process)
			}
			req.ProcessID = &id
		}
		if st.Subprocess != "" {
			id, ok := subprocessIDs[subprocessKey(st.Process, st.Subprocess)]
			if !ok {
				return fmt.Errorf("stakeholder %q: unknown subprocess %q of process %q", st.FullName, st.Subprocess, st.Process)
			}
			req.SubprocessID = &id
		}

		if _, err := s.stakeholders.CreateStakeholder(ctx, req); err != nil {
			return fmt.Errorf("stakeholder %q: %w", st.FullName, err)
		}
		result.Stakeholders++
	}

	s.logger.Debug("project seeded", "project_id", project.ID, "name", project.Name)
	return nil
}

func subprocessKey(process, subprocess string) string {
	return process + "/" + subprocess
}
