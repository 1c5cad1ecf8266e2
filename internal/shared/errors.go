package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate indicates a uniqueness conflict.
	ErrDuplicate = errors.New("duplicate entry")
	// ErrValidation indicates a request failed validation.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidID indicates a malformed or non-positive identifier.
	ErrInvalidID = errors.New("invalid ID")
)
