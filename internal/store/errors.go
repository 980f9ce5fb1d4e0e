package store

import "errors"

var (
	// ErrNotFound is returned when a lookup by id has no match
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when a mutation is given missing or
	// malformed fields and refuses to append a partial record
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTransition is returned when a status update is not on the
	// legal transition graph
	ErrInvalidTransition = errors.New("invalid status transition")
)
