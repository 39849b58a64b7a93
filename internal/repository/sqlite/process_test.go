package sqlite

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"analysisdesk/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestProcessRepository_CRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	project := f.project(t)

	process := f.process(t, project.ID)
	got, err := f.processes.GetByID(ctx, process.ID)
	require.NoError(t, err)
	require.Equal(t, process, got)

	process.Weight = 3
	process.Description = strPtr("Hiring to first day")
	require.NoError(t, f.processes.Update(ctx, process))

	list, err := f.processes.ListByProject(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, 3, list[0].Weight)

	n, err := f.processes.CountByProject(ctx, project.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	require.NoError(t, f.processes.Delete(ctx, process.ID))
	_, err = f.processes.GetByID(ctx, process.ID)
	require.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestSubprocessRepository_CRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	project := f.project(t)
	process := f.process(t, project.ID)

	first := f.subprocess(t, process.ID)
	second := f.subprocess(t, process.ID)

	list, err := f.subprocesses.ListByProcess(ctx, process.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, second.ID, list[0].ID)

	n, err := f.subprocesses.CountByProject(ctx, project.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	first.Name = "Signing"
	require.NoError(t, f.subprocesses.Update(ctx, first))
	got, err := f.subprocesses.GetByID(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, "Signing", got.Name)

	// Deleting the process cascades to its subprocesses
	require.NoError(t, f.processes.Delete(ctx, process.ID))
	_, err = f.subprocesses.GetByID(ctx, second.ID)
	require.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestTransactionManager_RollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tm := NewTransactionManager(f.db, slog.New(slog.NewTextHandler(io.Discard, nil)))

	sentinel := errors.New("abort")
	err := tm.ExecTx(ctx, func(ctx context.Context) error {
		require.NoError(t, f.projects.Create(ctx, newProject("inside tx")))
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	projects, err := f.projects.List(ctx)
	require.NoError(t, err)
	require.Empty(t, projects)
}

func TestTransactionManager_Commits(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tm := NewTransactionManager(f.db, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := tm.ExecTx(ctx, func(ctx context.Context) error {
		if err := f.projects.Create(ctx, newProject("a")); err != nil {
			return err
		}
		// Nested calls join the outer transaction
		return tm.ExecTx(ctx, func(ctx context.Context) error {
			return f.projects.Create(ctx, newProject("b"))
		})
	})
	require.NoError(t, err)

	projects, err := f.projects.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
}
