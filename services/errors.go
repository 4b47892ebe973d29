package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ValidationError reports malformed input or an invariant violation. It may
// carry several problems at once so callers see the whole picture in one
// round trip.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

func newValidationError(problems ...string) *ValidationError {
	return &ValidationError{Problems: problems}
}

// NotFoundError reports that a referenced entity does not exist.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// ForbiddenError reports an ownership mismatch on a mutating operation.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// StorageError wraps a failure of the underlying store. The wrapped error is
// for server-side logs only; callers get the operation name and nothing else.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s", e.Op)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// wrapStorageErr classifies a gorm error: missing rows become NotFoundError,
// everything else is opaque storage failure.
func wrapStorageErr(op, resource string, id uint, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Resource: resource, ID: id}
	}
	return &StorageError{Op: op, Err: err}
}
