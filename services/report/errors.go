package report

import "errors"

var (
	// ErrValidation marks bad client input (malformed coordinates, empty
	// description, unknown status).
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a lookup for a report that does not exist.
	ErrNotFound = errors.New("report not found")
)
