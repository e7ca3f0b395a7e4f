package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/accessibilityjobs/jobboard/internal/jobs"
	"github.com/accessibilityjobs/jobboard/internal/presenter"
)

// handleJobDetail renders the HTML detail page for an approved job. Unknown,
// malformed, and unapproved ids all render the same not-found page.
func (s *Server) handleJobDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.notFoundPage(w)
		return
	}

	record, err := s.store.GetJobByIDAndStatus(ctx, jobID, jobs.StatusApproved)
	if err != nil {
		s.logger.Error().Err(err).Str("job_id", jobID.String()).Msg("detail lookup failed")
		s.errorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if record == nil {
		s.notFoundPage(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := presenter.RenderDetail(w, presenter.BuildJobView(record)); err != nil {
		s.logger.Error().Err(err).Str("job_id", jobID.String()).Msg("detail render failed")
	}
}

func (s *Server) notFoundPage(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := presenter.RenderNotFound(w); err != nil {
		s.logger.Error().Err(err).Msg("not-found render failed")
	}
}
