package client

import (
	"fmt"

	models "analysisdesk/internal/domain/models/analysis"
)

// Status is the UI-facing project status; words are joined by hyphens
type Status string

const (
	StatusPlanning   Status = "planning"
	StatusInProgress Status = "in-progress"
	StatusPaused     Status = "paused"
	StatusCompleted  Status = "completed"
)

// statusTable pairs every client status with its wire value. Both directions are
// derived from it, so the mapping stays total and invertible.
var statusTable = []struct {
	client Status
	wire   models.ProjectStatus
}{
	{StatusPlanning, models.StatusPlanning},
	{StatusInProgress, models.StatusInProgress},
	{StatusPaused, models.StatusPaused},
	{StatusCompleted, models.StatusCompleted},
}

var (
	toWire   = make(map[Status]models.ProjectStatus, len(statusTable))
	fromWire = make(map[models.ProjectStatus]Status, len(statusTable))
)

func init() {
	for _, row := range statusTable {
		toWire[row.client] = row.wire
		fromWire[row.wire] = row.client
	}
}

// StatusToWire converts a client status to its wire value
func StatusToWire(s Status) (models.ProjectStatus, error) {
	w, ok := toWire[s]
	if !ok {
		return "", fmt.Errorf("unknown client status %q", s)
	}
	return w, nil
}

// StatusFromWire converts a wire status to its client value
func StatusFromWire(s models.ProjectStatus) (Status, error) {
	c, ok := fromWire[s]
	if !ok {
		return "", fmt.Errorf("unknown wire status %q", s)
	}
	return c, nil
}
