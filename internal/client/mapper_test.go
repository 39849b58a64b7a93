package client

import (
	"testing"

	models "analysisdesk/internal/domain/models/analysis"

	"github.com/stretchr/testify/require"
)

func TestProjectPatchToWire(t *testing.T) {
	tests := []struct {
		name  string
		patch ProjectPatch
		want  map[string]any
	}{
		{
			name:  "empty patch sends nothing",
			patch: ProjectPatch{},
			want:  map[string]any{},
		},
		{
			name:  "set name only",
			patch: ProjectPatch{Name: models.Set("Renamed")},
			want:  map[string]any{"name": "Renamed"},
		},
		{
			name:  "status is translated",
			patch: ProjectPatch{Status: models.Set(StatusInProgress)},
			want:  map[string]any{"status": models.StatusInProgress},
		},
		{
			name:  "cleared optional is an explicit null",
			patch: ProjectPatch{StartDate: models.Cleared[string](), Color: models.Set("teal")},
			want:  map[string]any{"start_date": nil, "color": "teal"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ProjectPatchToWire(tt.patch)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestProjectPatchToWire_Errors(t *testing.T) {
	_, err := ProjectPatchToWire(ProjectPatch{Status: models.Cleared[Status]()})
	require.Error(t, err)

	_, err = ProjectPatchToWire(ProjectPatch{Status: models.Set(Status("done"))})
	require.Error(t, err)
}

func TestStakeholderPatchToWire(t *testing.T) {
	got, err := StakeholderPatchToWire(StakeholderPatch{
		ProcessID:    models.Cleared[string](),
		SubprocessID: models.Set("7"),
		Notes:        models.Set("follow up"),
	})
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"process_id":    nil,
		"subprocess_id": int64(7),
		"notes":         "follow up",
	}, got)

	_, err = StakeholderPatchToWire(StakeholderPatch{ProcessID: models.Set("abc")})
	require.Error(t, err)
}

func TestProjectFromWire(t *testing.T) {
	desc := "Quarterly"
	p, err := ProjectFromWire(&models.Project{
		ID:          12,
		Name:        "Sales Revamp",
		Description: &desc,
		Status:      models.StatusInProgress,
	})
	require.NoError(t, err)
	require.Equal(t, Project{
		ID:          "12",
		Name:        "Sales Revamp",
		Description: "Quarterly",
		Status:      StatusInProgress,
	}, p)

	_, err = ProjectFromWire(&models.Project{ID: 1, Name: "x", Status: "archived"})
	require.Error(t, err)
}

func TestStakeholderFromWire(t *testing.T) {
	processID := int64(3)
	s := StakeholderFromWire(&models.Stakeholder{
		ID:        5,
		ProjectID: 1,
		ProcessID: &processID,
		FullName:  "Ana",
		Role:      "PM",
		Area:      "Ops",
		Contact:   "ana@x.com",
		Color:     "blue",
	})

	require.Equal(t, "5", s.ID)
	require.Equal(t, "1", s.ProjectID)
	require.NotNil(t, s.ProcessID)
	require.Equal(t, "3", *s.ProcessID)
	require.Nil(t, s.SubprocessID)
	require.Empty(t, s.Notes)
}

func TestStakeholderToWire(t *testing.T) {
	body, err := StakeholderToWire("4", NewStakeholder{FullName: "Ana", Color: "blue"})
	require.NoError(t, err)

	b := body.(stakeholderCreateBody)
	require.Equal(t, int64(4), b.ProjectID)
	require.Nil(t, b.ProcessID)
	require.Nil(t, b.Notes)

	_, err = StakeholderToWire("x", NewStakeholder{})
	require.Error(t, err)
}
