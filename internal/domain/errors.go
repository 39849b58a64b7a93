package domain

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
type HTTPError interface {
	error
	StatusCode() int
}

// Domain error types implementing HTTPError interface
type (
	// NotFoundError indicates a resource was not found
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input
	ValidationError struct {
		Message string
	}

	// UnauthorizedError indicates authentication failure
	UnauthorizedError struct {
		Message string
	}
)

// Error implementations
func (e *NotFoundError) Error() string     { return e.Message }
func (e *ValidationError) Error() string   { return e.Message }
func (e *UnauthorizedError) Error() string { return e.Message }

// StatusCode implementations (HTTPError interface)
func (e *NotFoundError) StatusCode() int     { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int   { return http.StatusBadRequest }
func (e *UnauthorizedError) StatusCode() int { return http.StatusUnauthorized }

// Is lets errors.Is match the typed errors against the sentinels below
func (e *NotFoundError) Is(target error) bool     { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool   { return target == ErrValidation }
func (e *UnauthorizedError) Is(target error) bool { return target == ErrUnauthorized }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
)

// NewNotFound builds a NotFoundError for a resource type and numeric identity
func NewNotFound(resourceType string, id int64) error {
	return &NotFoundError{Message: fmt.Sprintf("%s %d not found", resourceType, id)}
}

// NewValidation builds a ValidationError from a formatted message
func NewValidation(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError represents a store-level conflict (unique or foreign key constraint)
type ConflictError struct {
	Message      string // Human-readable error message
	ResourceType string // Type of resource (project, stakeholder, process)
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	return e.Message
}

// StatusCode implements the HTTPError interface
func (e *ConflictError) StatusCode() int {
	return http.StatusConflict
}

// Is allows errors.Is() to match against ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// ReferentialWarning reports records that still pointed at a resource when it was deleted.
// It is a soft condition: the delete succeeds and the warning is logged and counted.
type ReferentialWarning struct {
	ResourceType string
	ResourceID   int64
	Dependents   map[string]int64 // dependent resource type -> count
}

// HasDependents reports whether any dependent record was affected
func (w *ReferentialWarning) HasDependents() bool {
	for _, n := range w.Dependents {
		if n > 0 {
			return true
		}
	}
	return false
}

// Error implements the error interface so the warning can travel through error-typed channels
func (w *ReferentialWarning) Error() string {
	keys := make([]string, 0, len(w.Dependents))
	for k := range w.Dependents {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, w.Dependents[k]))
	}
	return fmt.Sprintf("%s %d deleted with dependents: %s", w.ResourceType, w.ResourceID, strings.Join(parts, ", "))
}
