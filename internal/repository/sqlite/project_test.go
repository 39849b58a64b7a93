package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"analysisdesk/internal/domain"
	models "analysisdesk/internal/domain/models/analysis"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newProject(name string) *models.Project {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &models.Project{
		Name:      name,
		Status:    models.StatusInProgress,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestProjectRepository_CreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	project := newProject("Sales Revamp")
	project.Status = models.StatusPlanning
	project.StartDate = strPtr("2024-03-01")
	project.Description = strPtr("Rework the sales pipeline")

	require.NoError(t, repo.Create(ctx, project))
	require.NotZero(t, project.ID)

	retrieved, err := repo.GetByID(ctx, project.ID)
	require.NoError(t, err)
	require.Equal(t, project, retrieved)
	require.Nil(t, retrieved.Color)
}

func TestProjectRepository_GetMissing(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)

	_, err := repo.GetByID(context.Background(), 999)
	require.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestProjectRepository_ListNewestFirst(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, newProject(name)))
	}

	projects, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	require.Equal(t, "third", projects[0].Name)
	require.Equal(t, "first", projects[2].Name)
	require.Greater(t, projects[0].ID, projects[1].ID)
}

func TestProjectRepository_Update(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	project := newProject("Original")
	require.NoError(t, repo.Create(ctx, project))

	project.Name = "Renamed"
	project.Status = models.StatusPaused
	project.Color = strPtr("#ff0000")
	project.UpdatedAt = project.UpdatedAt.Add(time.Second)
	require.NoError(t, repo.Update(ctx, project))

	retrieved, err := repo.GetByID(ctx, project.ID)
	require.NoError(t, err)
	require.Equal(t, project, retrieved)

	missing := newProject("ghost")
	missing.ID = 999
	err = repo.Update(ctx, missing)
	require.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestProjectRepository_RejectsUnknownStatus(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)

	project := newProject("Bad status")
	project.Status = "archived"
	err := repo.Create(context.Background(), project)
	require.True(t, errors.Is(err, domain.ErrValidation))
}

func TestProjectRepository_Delete(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	project := newProject("Doomed")
	require.NoError(t, repo.Create(ctx, project))
	require.NoError(t, repo.Delete(ctx, project.ID))

	_, err := repo.GetByID(ctx, project.ID)
	require.True(t, errors.Is(err, domain.ErrNotFound))

	err = repo.Delete(ctx, project.ID)
	require.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestProjectRepository_Stats(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, models.ProjectStats{}, *stats)

	statuses := []models.ProjectStatus{
		models.StatusPlanning,
		models.StatusInProgress,
		models.StatusInProgress,
		models.StatusCompleted,
	}
	for _, status := range statuses {
		p := newProject("p")
		p.Status = status
		require.NoError(t, repo.Create(ctx, p))
	}

	stats, err = repo.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, models.ProjectStats{Total: 4, Planning: 1, InProgress: 2, Paused: 0, Completed: 1}, *stats)
	require.True(t, stats.Consistent())
}
