package presenter

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accessibilityjobs/jobboard/internal/db"
)

func TestDisplayLocation(t *testing.T) {
	tests := []struct {
		name string
		rec  db.JobRecord
		want string
	}{
		{"specific location wins", db.JobRecord{SpecificLocation: "Austin HQ", City: "Austin", Location: "Texas"}, "Austin HQ"},
		{"city with country", db.JobRecord{City: "Austin", Country: "US"}, "Austin, US"},
		{"city alone", db.JobRecord{City: "Austin", Location: "Texas"}, "Austin"},
		{"country alone", db.JobRecord{Country: "US"}, "US"},
		{"legacy location", db.JobRecord{Location: "Texas"}, "Texas"},
		{"nothing", db.JobRecord{}, LocationNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayLocation(&tt.rec))
		})
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{30 * time.Second, "just now"},
		{5 * time.Minute, "5 minutes ago"},
		{time.Hour, "1 hour ago"},
		{3 * 24 * time.Hour, "3 days ago"},
		{60 * 24 * time.Hour, "2 months ago"},
		{3 * 365 * 24 * time.Hour, "3 years ago"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, relativeTime(now.Add(-tt.ago), now))
	}
}

func approvedRecord() *db.JobRecord {
	min, max := 80000, 120000
	return &db.JobRecord{
		ID:                 uuid.New(),
		Title:              "Senior Accessibility Engineer",
		Company:            "Acme Corp",
		EmploymentType:     "full-time",
		WorkArrangement:    "remote",
		ContactEmail:       "jane@acme.com",
		SalaryMin:          &min,
		SalaryMax:          &max,
		Currency:           "USD",
		City:               "Austin",
		Country:            "US",
		Description:        "Own accessibility across the product.",
		Requirements:       "WCAG 2.2, ARIA, screen reader testing.",
		RequiredSkills:     []string{"WCAG Auditing"},
		AccessibilityFocus: []string{"Web Accessibility"},
		Status:             "approved",
		CreatedAt:          time.Now().Add(-48 * time.Hour),
	}
}

func TestBuildJobView(t *testing.T) {
	rec := approvedRecord()
	view := BuildJobView(rec)

	require.NotNil(t, view.Salary)
	assert.Equal(t, "$80,000 - $120,000", *view.Salary)
	assert.Equal(t, "Remote", view.ArrangementLabel)
	assert.Equal(t, "Full-time", view.EmploymentTypeLabel)
	assert.Equal(t, "Austin, US", view.Location)
	assert.Equal(t, ApplyEmail, view.Apply.Kind)
	assert.Equal(t, "jane@acme.com", view.ContactEmail)
	assert.Equal(t, "2 days ago", view.PostedAgo)
}

func TestBuildJobView_LegacySalaryFallback(t *testing.T) {
	rec := approvedRecord()
	rec.SalaryMin, rec.SalaryMax = nil, nil
	rec.SalaryRange = "$70k - $90k"

	view := BuildJobView(rec)
	require.NotNil(t, view.Salary)
	assert.Equal(t, "$70k - $90k", *view.Salary)
}

func TestBuildJobView_ContactEmailHiddenWhenNotReal(t *testing.T) {
	rec := approvedRecord()
	rec.ContactEmail = "careers@acmecorp.com"
	rec.CompanyWebsite = "https://acme.com"

	view := BuildJobView(rec)
	assert.Equal(t, ApplyWebsite, view.Apply.Kind)
	assert.Empty(t, view.ContactEmail)
}

func TestRenderDetail(t *testing.T) {
	view := BuildJobView(approvedRecord())

	var buf bytes.Buffer
	require.NoError(t, RenderDetail(&buf, view))

	html := buf.String()
	assert.Contains(t, html, "Senior Accessibility Engineer")
	assert.Contains(t, html, "$80,000 - $120,000")
	assert.Contains(t, html, "Apply via Email")
	assert.Contains(t, html, "Austin, US")
}

func TestRenderNotFound(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderNotFound(&buf))
	assert.Contains(t, buf.String(), "Job Not Found")
}
