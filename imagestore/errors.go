// imagestore/errors.go
package imagestore

import "errors"

// Error kinds returned by store operations. Driver- and filesystem-level
// failures are wrapped into one of these before they reach the caller, so
// callers can branch with errors.Is without knowing the backend.
var (
	// ErrNotFound is returned when a retrieve matches zero rows.
	ErrNotFound = errors.New("imagestore: record not found")

	// ErrEmptyName is returned when an operation is given an empty record name.
	ErrEmptyName = errors.New("imagestore: empty record name")

	// ErrIO wraps local filesystem failures (unreadable input, unwritable output).
	ErrIO = errors.New("imagestore: i/o error")

	// ErrConnection wraps database connectivity failures.
	ErrConnection = errors.New("imagestore: connection error")

	// ErrQuery wraps statement execution failures, including constraint violations.
	ErrQuery = errors.New("imagestore: query error")
)
