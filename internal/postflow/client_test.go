package postflow

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accessibilityjobs/jobboard/internal/jobs"
)

func TestHTTPSubmitter_Success(t *testing.T) {
	jobID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/api/jobs/submit", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req jobs.SubmissionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEqual(t, uuid.Nil, req.IdempotencyKey)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "Job submitted successfully and is pending review",
			"job":     map[string]any{"id": jobID, "status": "pending"},
		})
	}))
	defer srv.Close()

	submitter := NewHTTPSubmitter(srv.URL)
	record, err := submitter.Submit(context.Background(), &jobs.SubmissionRequest{IdempotencyKey: uuid.New()})
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, jobID, record.ID)
	assert.Equal(t, "pending", record.Status)
}

func TestHTTPSubmitter_RejectionSurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Validation failed"})
	}))
	defer srv.Close()

	submitter := NewHTTPSubmitter(srv.URL)
	_, err := submitter.Submit(context.Background(), &jobs.SubmissionRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Validation failed")
}

func TestHTTPSubmitter_ServerUnreachable(t *testing.T) {
	submitter := NewHTTPSubmitter("http://127.0.0.1:1")
	_, err := submitter.Submit(context.Background(), &jobs.SubmissionRequest{})
	assert.Error(t, err)
}
