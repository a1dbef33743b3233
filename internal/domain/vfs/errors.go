package vfs

import "errors"

// Every rejection is recoverable; the store never partially applies a failed
// operation.
var (
	// ErrNotFound is returned when an id does not resolve to a live entity.
	ErrNotFound = errors.New("not found")

	// ErrEmptyName rejects create or rename input that trims to nothing.
	ErrEmptyName = errors.New("name is empty")

	// ErrEmptyText rejects comment or property text that trims to nothing.
	ErrEmptyText = errors.New("text is empty")

	// ErrRootDelete rejects deletion of the root folder.
	ErrRootDelete = errors.New("root folder cannot be deleted")

	// ErrNegativeSize rejects file metadata with a negative byte size.
	ErrNegativeSize = errors.New("size must be non-negative")
)
