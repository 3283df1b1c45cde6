package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when an insert collides with an existing row
	// on the entity's uniqueness key. Storage-level unique constraints are
	// the authoritative duplicate signal; there is no separate pre-read.
	ErrDuplicate = errors.New("duplicate record")
)
