package models

import (
	"fmt"
	"strings"
)

// ValidationError reports every structural problem with a submitted
// page at once, never just the first one found.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Reasons, ", ")
}

// AuthorizationError is returned when a caller is not permitted to
// perform an operation. Reason names the missing capability.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	return "not authorized: " + e.Reason
}

// NotFoundError is returned when an entity does not exist, or is not
// visible to the caller. Invisible pages are reported as not found so
// their existence does not leak to anonymous callers.
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// ConflictError is returned when a write contradicts persisted state,
// e.g. an update that changes the immutable creation date.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return "conflict: " + e.Reason
}

// DependencyError wraps a failure of the persistence or credential
// collaborator. It is surfaced unmodified; callers show a generic
// message and never the wrapped detail.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("dependency failure in %s: %v", e.Op, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}
