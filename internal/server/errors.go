// Package server provides the HTTP REST API for the resume studio.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mwhite/resume-studio/internal/editor"
	"github.com/mwhite/resume-studio/internal/export"
	"github.com/mwhite/resume-studio/internal/schemas"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validation    *ErrValidation
		entryNotFound *editor.NotFoundError
		surfaceGone   *export.NotFoundError
		badDocument   *schemas.ValidationError
	)
	switch {
	case errors.As(err, &validation), errors.As(err, &badDocument):
		return http.StatusBadRequest
	case errors.As(err, &entryNotFound), errors.As(err, &surfaceGone):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
