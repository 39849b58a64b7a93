package postgres

import (
	"errors"
	"fmt"

	"analysisdesk/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// IsPgDuplicateError checks if error is a unique constraint violation
func IsPgDuplicateError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23505 = unique_violation
		return pgErr.Code == "23505"
	}
	return false
}

// IsPgNoRowsError checks if error is a "no rows" error
func IsPgNoRowsError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsPgForeignKeyError checks if error is a foreign key violation
func IsPgForeignKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23503 = foreign_key_violation
		return pgErr.Code == "23503"
	}
	return false
}

// IsPgCheckError checks if error is a check constraint violation
func IsPgCheckError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23514 = check_violation
		return pgErr.Code == "23514"
	}
	return false
}

// MapWriteError converts constraint violations on insert/update into domain errors
func MapWriteError(err error, op, resourceType string) error {
	switch {
	case IsPgForeignKeyError(err):
		return domain.NewValidation("%s references a record that does not exist", resourceType)
	case IsPgCheckError(err):
		return domain.NewValidation("%s violates a store constraint", resourceType)
	case IsPgDuplicateError(err):
		return &domain.ConflictError{
			Message:      fmt.Sprintf("%s already exists", resourceType),
			ResourceType: resourceType,
		}
	default:
		return fmt.Errorf("%s %s: %w", op, resourceType, err)
	}
}
