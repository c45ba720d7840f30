package catalog

import "errors"

var (
	// ErrNotFound is returned by Remove and UpdateStatus when no record has
	// the requested ID.
	ErrNotFound = errors.New("book not found")

	// ErrInvalidStatus is returned by UpdateStatus for any value outside the
	// two enumerated states. The catalog is left untouched.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrEntropyUnavailable means the OS random source failed while
	// generating a book ID. There is no weak-generator fallback.
	ErrEntropyUnavailable = errors.New("entropy source unavailable")
)
