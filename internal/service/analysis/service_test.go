package analysis

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"analysisdesk/internal/database"
	"analysisdesk/internal/domain"
	models "analysisdesk/internal/domain/models/analysis"
	analysisSvc "analysisdesk/internal/domain/services/analysis"
	"analysisdesk/internal/repository"
	"analysisdesk/internal/repository/sqlite"

	"github.com/stretchr/testify/require"
)

type services struct {
	projects     analysisSvc.ProjectService
	stakeholders analysisSvc.StakeholderService
	processes    analysisSvc.ProcessService
}

func newTestServices(t *testing.T) *services {
	t.Helper()

	db, err := sqlite.New(":memory:", database.NewTableNames("test_"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(context.Background()))
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := repository.NewSQLiteStore(db, logger)
	validator := NewResourceValidator(store.Projects, store.Processes, store.Subprocesses)

	return &services{
		projects:     NewProjectService(store.Projects, store.Stakeholders, store.Processes, store.Subprocesses, store.Tx, logger),
		stakeholders: NewStakeholderService(store.Stakeholders, validator, logger),
		processes:    NewProcessService(store.Processes, store.Subprocesses, store.Stakeholders, validator, store.Tx, logger),
	}
}

func ptr[T any](v T) *T { return &v }

func (s *services) mustProject(t *testing.T, name string) *models.Project {
	t.Helper()
	p, err := s.projects.CreateProject(context.Background(), &analysisSvc.CreateProjectRequest{Name: name})
	require.NoError(t, err)
	return p
}

func (s *services) mustStakeholder(t *testing.T, projectID int64, processID, subprocessID *int64) *models.Stakeholder {
	t.Helper()
	st, err := s.stakeholders.CreateStakeholder(context.Background(), &analysisSvc.CreateStakeholderRequest{
		ProjectID:    projectID,
		ProcessID:    processID,
		SubprocessID: subprocessID,
		FullName:     "Ana",
		Role:         "PM",
		Area:         "Ops",
		Contact:      "ana@x.com",
		Color:        "blue",
	})
	require.NoError(t, err)
	return st
}

func isValidation(err error) bool { return errors.Is(err, domain.ErrValidation) }
func isNotFound(err error) bool   { return errors.Is(err, domain.ErrNotFound) }

func TestCreateProject_ReadAfterWrite(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	inputs := []*analysisSvc.CreateProjectRequest{
		{Name: "Minimal"},
		{
			Name:        "  Padded  ",
			Description: ptr("Full record"),
			StartDate:   ptr("2024-03-01"),
			Status:      ptr(models.StatusCompleted),
			Color:       ptr("teal"),
		},
		{Name: "Blank optionals", Description: ptr("   "), Color: ptr("")},
	}

	for _, in := range inputs {
		created, err := svc.projects.CreateProject(ctx, in)
		require.NoError(t, err)

		got, err := svc.projects.GetProject(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, created, got)
	}
}

func TestCreateProject_Defaults(t *testing.T) {
	svc := newTestServices(t)

	p := svc.mustProject(t, "  Trimmed  ")
	require.Equal(t, "Trimmed", p.Name)
	require.Equal(t, models.StatusInProgress, p.Status)
	require.Nil(t, p.Description)
	require.Nil(t, p.StartDate)
	require.Nil(t, p.Color)
}

func TestCreateProject_Validation(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *analysisSvc.CreateProjectRequest
	}{
		{name: "empty name", req: &analysisSvc.CreateProjectRequest{Name: ""}},
		{name: "blank name", req: &analysisSvc.CreateProjectRequest{Name: "   "}},
		{name: "long name", req: &analysisSvc.CreateProjectRequest{Name: strings.Repeat("x", 151)}},
		{name: "unknown status", req: &analysisSvc.CreateProjectRequest{Name: "p", Status: ptr(models.ProjectStatus("archived"))}},
		{name: "client status spelling", req: &analysisSvc.CreateProjectRequest{Name: "p", Status: ptr(models.ProjectStatus("in-progress"))}},
		{name: "bad date", req: &analysisSvc.CreateProjectRequest{Name: "p", StartDate: ptr("03/01/2024")}},
		{name: "long color", req: &analysisSvc.CreateProjectRequest{Name: "p", Color: ptr(strings.Repeat("c", 31))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.projects.CreateProject(ctx, tt.req)
			require.True(t, isValidation(err), "expected validation error, got %v", err)
		})
	}

	// Nothing was written
	projects, err := svc.projects.ListProjects(ctx)
	require.NoError(t, err)
	require.Empty(t, projects)
}

func TestSalesRevampScenario(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	svc.mustProject(t, "Older")
	created, err := svc.projects.CreateProject(ctx, &analysisSvc.CreateProjectRequest{
		Name:   "Sales Revamp",
		Status: ptr(models.StatusPlanning),
	})
	require.NoError(t, err)

	list, err := svc.projects.ListProjects(ctx)
	require.NoError(t, err)
	require.Equal(t, created.ID, list[0].ID)
	require.Equal(t, "Sales Revamp", list[0].Name)

	stats, err := svc.projects.GetStats(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), stats.Planning)
	require.Equal(t, int64(2), stats.Total)
}

func TestGetStats_SumsToTotal(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	for i, status := range []models.ProjectStatus{
		models.StatusPlanning, models.StatusPaused, models.StatusPaused,
		models.StatusCompleted, models.StatusInProgress,
	} {
		_, err := svc.projects.CreateProject(ctx, &analysisSvc.CreateProjectRequest{
			Name:   strings.Repeat("p", i+1),
			Status: ptr(status),
		})
		require.NoError(t, err)

		stats, err := svc.projects.GetStats(ctx)
		require.NoError(t, err)
		require.Equal(t, stats.Total, stats.Planning+stats.InProgress+stats.Paused+stats.Completed)
		require.Equal(t, int64(i+1), stats.Total)
	}
}

func TestUpdateProject_EmptyPatchIsIdentity(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	created, err := svc.projects.CreateProject(ctx, &analysisSvc.CreateProjectRequest{
		Name:        "Stable",
		Description: ptr("keep me"),
		StartDate:   ptr("2024-01-15"),
		Color:       ptr("red"),
	})
	require.NoError(t, err)

	updated, err := svc.projects.UpdateProject(ctx, created.ID, &analysisSvc.UpdateProjectRequest{})
	require.NoError(t, err)

	got, err := svc.projects.GetProject(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, got, updated)
	require.Equal(t, created, got)
}

func TestUpdateProject_ShallowMerge(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	created, err := svc.projects.CreateProject(ctx, &analysisSvc.CreateProjectRequest{
		Name:        "Merge me",
		Description: ptr("original"),
		Color:       ptr("red"),
	})
	require.NoError(t, err)

	updated, err := svc.projects.UpdateProject(ctx, created.ID, &analysisSvc.UpdateProjectRequest{
		Status: models.Set(models.StatusPaused),
		Color:  models.Cleared[string](),
	})
	require.NoError(t, err)
	require.Equal(t, "Merge me", updated.Name)
	require.Equal(t, "original", *updated.Description)
	require.Equal(t, models.StatusPaused, updated.Status)
	require.Nil(t, updated.Color)

	got, err := svc.projects.GetProject(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, updated, got)
}

func TestUpdateProject_Errors(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	p := svc.mustProject(t, "Target")

	_, err := svc.projects.UpdateProject(ctx, 999, &analysisSvc.UpdateProjectRequest{Name: models.Set("x")})
	require.True(t, isNotFound(err))

	_, err = svc.projects.UpdateProject(ctx, p.ID, &analysisSvc.UpdateProjectRequest{Name: models.Cleared[string]()})
	require.True(t, isValidation(err))

	_, err = svc.projects.UpdateProject(ctx, p.ID, &analysisSvc.UpdateProjectRequest{Status: models.Cleared[models.ProjectStatus]()})
	require.True(t, isValidation(err))

	got, err := svc.projects.GetProject(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestDeleteProject(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	p := svc.mustProject(t, "Doomed")

	require.NoError(t, svc.projects.DeleteProject(ctx, p.ID))

	_, err := svc.projects.GetProject(ctx, p.ID)
	require.True(t, isNotFound(err))

	err = svc.projects.DeleteProject(ctx, p.ID)
	require.True(t, isNotFound(err))

	err = svc.projects.DeleteProject(ctx, 999)
	require.True(t, isNotFound(err))
}

func TestDeleteProject_CascadesDependents(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	p := svc.mustProject(t, "Parent")

	process, err := svc.processes.CreateProcess(ctx, &analysisSvc.CreateProcessRequest{ProjectID: p.ID, Name: "Billing"})
	require.NoError(t, err)
	st := svc.mustStakeholder(t, p.ID, &process.ID, nil)

	require.NoError(t, svc.projects.DeleteProject(ctx, p.ID))

	_, err = svc.stakeholders.GetStakeholder(ctx, st.ID)
	require.True(t, isNotFound(err))
	_, err = svc.processes.GetProcess(ctx, process.ID)
	require.True(t, isNotFound(err))
}

func TestGetOverview(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	p := svc.mustProject(t, "Overview")

	process, err := svc.processes.CreateProcess(ctx, &analysisSvc.CreateProcessRequest{ProjectID: p.ID, Name: "Billing"})
	require.NoError(t, err)
	_, err = svc.processes.CreateSubprocess(ctx, &analysisSvc.CreateSubprocessRequest{ProcessID: process.ID, Name: "Invoicing"})
	require.NoError(t, err)
	svc.mustStakeholder(t, p.ID, nil, nil)
	svc.mustStakeholder(t, p.ID, &process.ID, nil)

	overview, err := svc.projects.GetOverview(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, p.ID, overview.Project.ID)
	require.Equal(t, int64(2), overview.Stakeholders)
	require.Equal(t, int64(1), overview.Processes)
	require.Equal(t, int64(1), overview.Subprocesses)

	_, err = svc.projects.GetOverview(ctx, 999)
	require.True(t, isNotFound(err))
}
