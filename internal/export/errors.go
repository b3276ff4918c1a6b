// Package export serializes resumes into downloadable document formats.
//
// All three exporters share one failure contract: internal errors never cross
// the exporter boundary. Every call returns a Result carrying a human-readable
// message for both the success and the failure case.
package export

import "fmt"

// NotFoundError indicates the referenced visual surface is missing or
// detached. Only the rasterized exporter produces it.
type NotFoundError struct {
	Surface string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("visual surface not found: %s", e.Surface)
}

// SerializationError wraps a format-specific encoding failure.
type SerializationError struct {
	Format string
	Cause  error
}

func (e *SerializationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s serialization failed: %v", e.Format, e.Cause)
	}
	return fmt.Sprintf("%s serialization failed", e.Format)
}

func (e *SerializationError) Unwrap() error {
	return e.Cause
}
