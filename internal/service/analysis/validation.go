package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"analysisdesk/internal/domain"
	analysisRepo "analysisdesk/internal/domain/repositories/analysis"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// now returns the current time at the precision both stores can round-trip
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// normalizeOptional trims an optional string; blank values become nil
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// validationError wraps ozzo validation errors as a domain.ValidationError
func validationError(err error) error {
	if err == nil {
		return nil
	}
	return &domain.ValidationError{Message: "validation failed: " + err.Error()}
}

// requiredText is the rule set for a required, trimmed string of at most max runes
func requiredText(max int) []validation.Rule {
	return []validation.Rule{validation.Required, validation.RuneLength(1, max)}
}

// optionalText is the rule set for a nullable string of at most max runes
func optionalText(max int) []validation.Rule {
	return []validation.Rule{validation.NilOrNotEmpty, validation.RuneLength(0, max)}
}

// ResourceValidator checks that referenced parent records exist and belong together
// before a child record is written
type ResourceValidator struct {
	projectRepo    analysisRepo.ProjectRepository
	processRepo    analysisRepo.ProcessRepository
	subprocessRepo analysisRepo.SubprocessRepository
}

// NewResourceValidator creates a new resource validator
func NewResourceValidator(
	projectRepo analysisRepo.ProjectRepository,
	processRepo analysisRepo.ProcessRepository,
	subprocessRepo analysisRepo.SubprocessRepository,
) *ResourceValidator {
	return &ResourceValidator{
		projectRepo:    projectRepo,
		processRepo:    processRepo,
		subprocessRepo: subprocessRepo,
	}
}

// ValidateProject ensures a project exists.
// A missing project is a validation failure of the referencing record, not a 404.
func (v *ResourceValidator) ValidateProject(ctx context.Context, projectID int64) error {
	if _, err := v.projectRepo.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidation("project %d does not exist", projectID)
		}
		return fmt.Errorf("invalid project: %w", err)
	}
	return nil
}

// ValidateScope ensures an optional process belongs to the project and an optional
// subprocess belongs to the process. A subprocess without a process is rejected.
func (v *ResourceValidator) ValidateScope(ctx context.Context, projectID int64, processID, subprocessID *int64) error {
	if processID == nil {
		if subprocessID != nil {
			return domain.NewValidation("subprocess_id requires process_id")
		}
		return nil
	}

	process, err := v.processRepo.GetByID(ctx, *processID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidation("process %d does not exist", *processID)
		}
		return fmt.Errorf("invalid process: %w", err)
	}
	if process.ProjectID != projectID {
		return domain.NewValidation("process %d does not belong to project %d", *processID, projectID)
	}

	if subprocessID == nil {
		return nil
	}

	subprocess, err := v.subprocessRepo.GetByID(ctx, *subprocessID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidation("subprocess %d does not exist", *subprocessID)
		}
		return fmt.Errorf("invalid subprocess: %w", err)
	}
	if subprocess.ProcessID != *processID {
		return domain.NewValidation("subprocess %d does not belong to process %d", *subprocessID, *processID)
	}

	return nil
}
