package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accessibilityjobs/jobboard/internal/db"
	"github.com/accessibilityjobs/jobboard/internal/jobs"
)

// memStore is an in-memory Store double for handler tests.
type memStore struct {
	mu      sync.Mutex
	records map[uuid.UUID]*db.JobRecord
	byKey   map[uuid.UUID]uuid.UUID
	failing bool
}

func newMemStore() *memStore {
	return &memStore{
		records: make(map[uuid.UUID]*db.JobRecord),
		byKey:   make(map[uuid.UUID]uuid.UUID),
	}
}

func (m *memStore) CreateJob(_ context.Context, sub *jobs.JobSubmission, idemKey uuid.UUID) (*db.JobRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failing {
		return nil, fmt.Errorf("connection refused")
	}
	if id, ok := m.byKey[idemKey]; ok {
		return m.records[id], nil
	}

	rec := &db.JobRecord{
		ID:                  uuid.New(),
		IdempotencyKey:      idemKey,
		Title:               sub.Title,
		Company:             sub.Company,
		EmploymentType:      sub.EmploymentType,
		WorkArrangement:     sub.WorkArrangement,
		City:                sub.City,
		Country:             sub.Country,
		Currency:            sub.Currency,
		SalaryMin:           sub.SalaryMin,
		SalaryMax:           sub.SalaryMax,
		ContactEmail:        sub.ContactEmail,
		Description:         sub.Description,
		KeyResponsibilities: sub.KeyResponsibilities,
		Requirements:        sub.Requirements,
		RequiredSkills:      sub.RequiredSkills,
		AccessibilityFocus:  sub.AccessibilityFocus,
		Status:              jobs.StatusPending,
		CreatedAt:           time.Now(),
	}
	m.records[rec.ID] = rec
	m.byKey[idemKey] = rec.ID
	return rec, nil
}

func (m *memStore) GetJobByIDAndStatus(_ context.Context, id uuid.UUID, status string) (*db.JobRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[id]
	if !ok || rec.Status != status {
		return nil, nil
	}
	return rec, nil
}

func (m *memStore) ListJobs(_ context.Context, opts db.ListJobsOptions) ([]db.JobRecord, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []db.JobRecord
	for _, rec := range m.records {
		if rec.Status == opts.Status {
			out = append(out, *rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	total := len(out)
	if opts.Offset < len(out) {
		out = out[opts.Offset:]
	} else {
		out = nil
	}
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, total, nil
}

func (m *memStore) UpdateJobStatus(_ context.Context, id uuid.UUID, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[id]
	if !ok {
		return fmt.Errorf("job not found: %s", id)
	}
	rec.Status = status
	rec.UpdatedAt = time.Now()
	return nil
}

func newTestServer(store Store) *Server {
	return &Server{
		store:  store,
		logger: zerolog.Nop(),
	}
}

func submissionBody(t *testing.T, mutate func(m map[string]any)) *bytes.Reader {
	t.Helper()

	m := map[string]any{
		"title":               "Senior Accessibility Engineer",
		"company":             "Acme Corp",
		"employmentType":      "full-time",
		"workArrangement":     "remote",
		"contactEmail":        "jane@acme.com",
		"description":         "Own accessibility across web and mobile. You will run audits with assistive technology, pair with feature teams on remediation, and keep our design system components conformant as the product grows.",
		"keyResponsibilities": "Audit product surfaces, remediate issues, educate feature teams on accessible patterns.",
		"requirements":        "Deep knowledge of WCAG 2.2, ARIA authoring practices, and screen reader testing workflows.",
		"requiredSkills":      []string{"WCAG Auditing"},
		"accessibilityFocus":  []string{"Web Accessibility"},
	}
	if mutate != nil {
		mutate(m)
	}

	payload, err := json.Marshal(m)
	require.NoError(t, err)
	return bytes.NewReader(payload)
}

func TestHandleSubmitJob_Valid(t *testing.T) {
	s := newTestServer(newMemStore())

	req := httptest.NewRequest("POST", "/api/jobs/submit", submissionBody(t, nil))
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp SubmitJobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "pending review")
	require.NotNil(t, resp.Job)
	assert.Equal(t, jobs.StatusPending, resp.Job.Status)
	assert.NotEqual(t, uuid.Nil, resp.Job.ID)
}

func TestHandleSubmitJob_NullSalaryFields(t *testing.T) {
	s := newTestServer(newMemStore())

	// Empty salary inputs arrive as explicit nulls.
	body := submissionBody(t, func(m map[string]any) {
		m["salaryMin"] = nil
		m["salaryMax"] = nil
	})
	req := httptest.NewRequest("POST", "/api/jobs/submit", body)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp SubmitJobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Job)
	assert.Nil(t, resp.Job.SalaryMin)
	assert.Nil(t, resp.Job.SalaryMax)
}

func TestHandleSubmitJob_MissingFields(t *testing.T) {
	s := newTestServer(newMemStore())

	body := submissionBody(t, func(m map[string]any) {
		delete(m, "contactEmail")
	})
	req := httptest.NewRequest("POST", "/api/jobs/submit", body)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Validation failed", resp.Error)
	assert.Contains(t, resp.Details, "contactEmail")
}

func TestHandleSubmitJob_SemanticValidation(t *testing.T) {
	s := newTestServer(newMemStore())

	// Passes the structural check but fails the length floor.
	body := submissionBody(t, func(m map[string]any) {
		m["description"] = "Too short."
	})
	req := httptest.NewRequest("POST", "/api/jobs/submit", body)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error   string                     `json:"error"`
		Details map[string]jobs.FieldError `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp.Details, "description")
	assert.Equal(t, jobs.CodeTooShort, resp.Details["description"].Code)
}

func TestHandleSubmitJob_MalformedJSON(t *testing.T) {
	s := newTestServer(newMemStore())

	req := httptest.NewRequest("POST", "/api/jobs/submit", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSubmitJob_StoreFailure(t *testing.T) {
	store := newMemStore()
	store.failing = true
	s := newTestServer(store)

	req := httptest.NewRequest("POST", "/api/jobs/submit", submissionBody(t, nil))
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandleSubmitJob_IdempotentRetry(t *testing.T) {
	s := newTestServer(newMemStore())
	key := uuid.New()

	submit := func() *db.JobRecord {
		body := submissionBody(t, func(m map[string]any) {
			m["idempotencyKey"] = key.String()
		})
		req := httptest.NewRequest("POST", "/api/jobs/submit", body)
		w := httptest.NewRecorder()
		s.routes().ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp SubmitJobResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp.Job
	}

	first := submit()
	second := submit()
	assert.Equal(t, first.ID, second.ID)
}

func TestHandleGetJob(t *testing.T) {
	store := newMemStore()
	s := newTestServer(store)

	rec, err := store.CreateJob(context.Background(), validStoredSubmission(), uuid.New())
	require.NoError(t, err)

	t.Run("pending job hidden", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/jobs/"+rec.ID.String(), nil)
		w := httptest.NewRecorder()
		s.routes().ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Job not found")
	})

	t.Run("approved job visible", func(t *testing.T) {
		require.NoError(t, store.UpdateJobStatus(context.Background(), rec.ID, jobs.StatusApproved))

		req := httptest.NewRequest("GET", "/api/jobs/"+rec.ID.String(), nil)
		w := httptest.NewRecorder()
		s.routes().ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Job db.JobRecord `json:"job"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, rec.ID, resp.Job.ID)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/jobs/not-a-uuid", nil)
		w := httptest.NewRecorder()
		s.routes().ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleListJobs(t *testing.T) {
	store := newMemStore()
	s := newTestServer(store)

	approved, err := store.CreateJob(context.Background(), validStoredSubmission(), uuid.New())
	require.NoError(t, err)
	require.NoError(t, store.UpdateJobStatus(context.Background(), approved.ID, jobs.StatusApproved))

	_, err = store.CreateJob(context.Background(), validStoredSubmission(), uuid.New())
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/jobs", nil)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ListJobsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Jobs, 1)
	assert.Equal(t, approved.ID, resp.Jobs[0].ID)
}

func validStoredSubmission() *jobs.JobSubmission {
	min, max := 80000, 120000
	return &jobs.JobSubmission{
		Title:               "Senior Accessibility Engineer",
		Company:             "Acme Corp",
		EmploymentType:      "full-time",
		WorkArrangement:     "remote",
		ContactEmail:        "jane@acme.com",
		SalaryMin:           &min,
		SalaryMax:           &max,
		Currency:            "USD",
		Description:         "Own accessibility across web and mobile.",
		KeyResponsibilities: "Audit, remediate, educate.",
		Requirements:        "WCAG 2.2, ARIA, screen reader testing.",
		RequiredSkills:      []string{"WCAG Auditing"},
		AccessibilityFocus:  []string{"Web Accessibility"},
	}
}
