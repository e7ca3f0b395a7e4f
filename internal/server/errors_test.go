package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/accessibilityjobs/jobboard/internal/jobs"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"job not found", &ErrJobNotFound{JobID: uuid.New()}, http.StatusNotFound},
		{"validation", &ErrValidation{Fields: jobs.FieldErrors{"title": {Code: jobs.CodeMissingField, Message: "title is required"}}}, http.StatusBadRequest},
		{"unknown", fmt.Errorf("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrValidation_MentionsFields(t *testing.T) {
	err := &ErrValidation{Fields: jobs.FieldErrors{
		"contactEmail": {Code: jobs.CodeInvalidFormat, Message: "contactEmail must be a valid email address"},
	}}
	assert.Contains(t, err.Error(), "contactEmail")
}
