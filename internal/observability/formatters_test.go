package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/accessibilityjobs/jobboard/internal/db"
	"github.com/accessibilityjobs/jobboard/internal/jobs"
	"github.com/accessibilityjobs/jobboard/internal/postflow"
)

func TestPrintStep(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintStep(postflow.StepInfo(1))

	out := buf.String()
	assert.Contains(t, out, "STEP 1 OF 6: BASIC INFORMATION")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "└")
}

func TestPrintDraftSummary(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintDraftSummary(jobs.JobSubmission{
		Title:              "Accessibility Engineer",
		Company:            "Acme Corp",
		WorkArrangement:    "remote",
		ContactEmail:       "jane@acme.com",
		RequiredSkills:     []string{"WCAG Auditing", "ARIA"},
		AccessibilityFocus: []string{"Web Accessibility"},
	})

	out := buf.String()
	assert.Contains(t, out, "REVIEW YOUR POSTING")
	assert.Contains(t, out, "Accessibility Engineer")
	assert.Contains(t, out, "Remote")
	assert.Contains(t, out, "• WCAG Auditing")
	assert.Contains(t, out, "(not set)")
}

func TestPrintDraftSummary_TruncatesLongLists(t *testing.T) {
	skills := make([]string, 8)
	for i := range skills {
		skills[i] = "Skill"
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintDraftSummary(jobs.JobSubmission{RequiredSkills: skills})

	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintValidationErrors(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintValidationErrors(jobs.FieldErrors{
		"title":        {Code: jobs.CodeMissingField, Message: "title is required"},
		"contactEmail": {Code: jobs.CodeInvalidFormat, Message: "contactEmail must be a valid email address"},
	})

	out := buf.String()
	assert.Contains(t, out, "PLEASE FIX THE FOLLOWING")
	// Sorted by field name
	assert.Less(t, strings.Index(out, "contactEmail"), strings.Index(out, "title"))
}

func TestPrintSubmissionResult(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSubmissionResult(&db.JobRecord{
		ID:     uuid.New(),
		Status: jobs.StatusPending,
	})

	out := buf.String()
	assert.Contains(t, out, "SUBMISSION RECEIVED")
	assert.Contains(t, out, "pending")
}

func TestPrintSubmissionResult_NilRecord(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSubmissionResult(nil)
	assert.Empty(t, buf.String())
}
