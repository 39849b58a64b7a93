package sqlite

import (
	"fmt"
	"strings"

	"analysisdesk/internal/domain"
)

func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isCheckViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "CHECK constraint failed")
}

// mapWriteError converts constraint violations on insert/update into domain errors
func mapWriteError(err error, op, resourceType string) error {
	switch {
	case isForeignKeyViolation(err):
		return domain.NewValidation("%s references a record that does not exist", resourceType)
	case isCheckViolation(err):
		return domain.NewValidation("%s violates a store constraint", resourceType)
	case isUniqueViolation(err):
		return &domain.ConflictError{
			Message:      fmt.Sprintf("%s already exists", resourceType),
			ResourceType: resourceType,
		}
	default:
		return fmt.Errorf("failed to %s %s: %w", op, resourceType, err)
	}
}
