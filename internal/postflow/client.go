package postflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/accessibilityjobs/jobboard/internal/db"
	"github.com/accessibilityjobs/jobboard/internal/jobs"
)

// HTTPSubmitter posts submissions to a running board instance.
type HTTPSubmitter struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPSubmitter creates a submitter for the board at baseURL.
func NewHTTPSubmitter(baseURL string) *HTTPSubmitter {
	return &HTTPSubmitter{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Submit delivers the submission and returns the stored record. Validation
// rejections and other API errors are surfaced with the server's message.
func (h *HTTPSubmitter) Submit(ctx context.Context, req *jobs.SubmissionRequest) (*db.JobRecord, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode submission: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, h.BaseURL+"/api/jobs/submit", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := h.Client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("post submission: %w", err)
	}
	defer resp.Body.Close()

	var body struct {
		Message string        `json:"message"`
		Job     *db.JobRecord `json:"job"`
		Error   string        `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusCreated {
		if body.Error != "" {
			return nil, fmt.Errorf("submission rejected: %s", body.Error)
		}
		return nil, fmt.Errorf("submission rejected: status %d", resp.StatusCode)
	}

	return body.Job, nil
}
