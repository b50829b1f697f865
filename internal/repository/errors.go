package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested record does not exist in the database.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert would violate a uniqueness
// invariant. Use errors.As with *DuplicateError to learn which constraint.
var ErrDuplicate = errors.New("duplicate")

// DuplicateError carries the violated constraint name. It wraps ErrDuplicate
// so errors.Is(err, ErrDuplicate) holds.
type DuplicateError struct {
	Constraint string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate: constraint %s", e.Constraint)
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicate }
