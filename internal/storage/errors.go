// ABOUTME: Sentinel errors for the storage layer.
// ABOUTME: Lookup misses and closed-handle access get distinct errors.
package storage

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")

	// ErrStoreClosed is returned when an operation runs against a handle
	// that was never opened or has been closed.
	ErrStoreClosed = errors.New("store not initialized")

	// ErrOwnerMismatch is returned when a medication log write names a user
	// that does not own the medication.
	ErrOwnerMismatch = errors.New("medication owner mismatch")
)
