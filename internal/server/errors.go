package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/accessibilityjobs/jobboard/internal/jobs"
)

// ErrJobNotFound indicates a job was not found or is not approved
type ErrJobNotFound struct {
	JobID uuid.UUID
}

func (e *ErrJobNotFound) Error() string {
	return fmt.Sprintf("job not found: %s", e.JobID)
}

// ErrValidation indicates a submission failed validation
type ErrValidation struct {
	Fields jobs.FieldErrors
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s", e.Fields.Error())
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrJobNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
