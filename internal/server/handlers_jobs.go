package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/accessibilityjobs/jobboard/internal/db"
	"github.com/accessibilityjobs/jobboard/internal/geo"
	"github.com/accessibilityjobs/jobboard/internal/jobs"
	"github.com/accessibilityjobs/jobboard/internal/schemas"
)

const maxSubmissionBytes = 1 << 20

// SubmitJobResponse represents the response for a successful submission
type SubmitJobResponse struct {
	Message string        `json:"message"`
	Job     *db.JobRecord `json:"job"`
}

// ListJobsResponse represents the response for listing jobs
type ListJobsResponse struct {
	Jobs   []db.JobRecord `json:"jobs"`
	Count  int            `json:"count"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// handleSubmitJob accepts a job submission, validates it, and stores it as
// pending review.
func (s *Server) handleSubmitJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSubmissionBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	// Structural check first: required keys, JSON types, enum constants.
	if err := schemas.ValidateSubmission(body); err != nil {
		var schemaErr *schemas.ValidationError
		if errors.As(err, &schemaErr) {
			details := make(map[string]string, len(schemaErr.Errors))
			for _, fe := range schemaErr.Errors {
				details[fe.Field] = fe.Message
			}
			s.jsonResponse(w, http.StatusBadRequest, map[string]any{
				"error":   "Validation failed",
				"details": details,
			})
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	var req jobs.SubmissionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	s.applyGeoDefaults(r, &req.JobSubmission)

	if fieldErrs := jobs.Validate(&req.JobSubmission); fieldErrs != nil {
		s.jsonResponse(w, http.StatusBadRequest, map[string]any{
			"error":   "Validation failed",
			"details": fieldErrs,
		})
		return
	}

	idemKey := req.IdempotencyKey
	if idemKey == uuid.Nil {
		idemKey = uuid.New()
	}

	record, err := s.store.CreateJob(ctx, &req.JobSubmission, idemKey)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create job")
		s.errorResponse(w, http.StatusInternalServerError, "Failed to submit job")
		return
	}

	s.jsonResponse(w, http.StatusCreated, SubmitJobResponse{
		Message: "Job submitted successfully and is pending review",
		Job:     record,
	})
}

// applyGeoDefaults fills country and currency from the client IP when the
// submission omits them and a GeoIP database is available.
func (s *Server) applyGeoDefaults(r *http.Request, sub *jobs.JobSubmission) {
	if s.ipResolver == nil || sub.Country != "" {
		if sub.Currency == "" && sub.Country != "" {
			sub.Currency = geo.CurrencyForCountry(sub.Country)
		}
		return
	}

	code, err := s.ipResolver.CountryCode(s.extractClientID(r))
	if err != nil || code == "" {
		return
	}
	sub.Country = code
	if sub.Currency == "" {
		sub.Currency = geo.CurrencyForCountry(code)
	}
}

// handleGetJob retrieves an approved job by its ID
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job id")
		return
	}

	record, err := s.store.GetJobByIDAndStatus(ctx, jobID, jobs.StatusApproved)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"job": record})
}

// handleListJobs lists approved jobs with pagination
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit := parseQueryInt(r, "limit", 50, 100)
	offset := parseQueryInt(r, "offset", 0, 0)

	records, total, err := s.store.ListJobs(ctx, db.ListJobsOptions{
		Status: jobs.StatusApproved,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ListJobsResponse{
		Jobs:   records,
		Count:  total,
		Limit:  limit,
		Offset: offset,
	})
}

func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}
