// Package observability provides formatted output utilities for the
// interactive posting flow.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/accessibilityjobs/jobboard/internal/db"
	"github.com/accessibilityjobs/jobboard/internal/jobs"
	"github.com/accessibilityjobs/jobboard/internal/postflow"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the posting flow
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintStep outputs the banner for one step of the posting flow.
func (p *Printer) PrintStep(step postflow.Step) {
	title := fmt.Sprintf("STEP %d OF %d: %s", step.Number, postflow.StepCount, strings.ToUpper(step.Title))
	p.printBox(title, step.Hint)
}

// PrintDraftSummary outputs a review of the draft before submission.
func (p *Printer) PrintDraftSummary(sub jobs.JobSubmission) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:        %s\n", orUnset(sub.Title)))
	sb.WriteString(fmt.Sprintf("Company:      %s\n", orUnset(sub.Company)))
	sb.WriteString(fmt.Sprintf("Type:         %s\n", orUnset(sub.EmploymentType)))
	sb.WriteString(fmt.Sprintf("Arrangement:  %s\n", orUnset(sub.WorkArrangement)))

	location := sub.City
	if location == "" && sub.WorkArrangement == jobs.ArrangementRemote {
		location = "Remote"
	}
	sb.WriteString(fmt.Sprintf("Location:     %s\n", orUnset(location)))
	sb.WriteString(fmt.Sprintf("Contact:      %s\n", orUnset(sub.ContactEmail)))

	if len(sub.RequiredSkills) > 0 {
		sb.WriteString("\nRequired skills:\n")
		sb.WriteString(bulletList(sub.RequiredSkills))
	}
	if len(sub.AccessibilityFocus) > 0 {
		sb.WriteString("\nAccessibility focus:\n")
		sb.WriteString(bulletList(sub.AccessibilityFocus))
	}

	p.printBox("REVIEW YOUR POSTING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidationErrors outputs field errors from a rejected submit.
func (p *Printer) PrintValidationErrors(fieldErrs jobs.FieldErrors) {
	if len(fieldErrs) == 0 {
		return
	}

	var sb strings.Builder
	for _, field := range fieldErrs.Fields() {
		sb.WriteString(fmt.Sprintf("• %s: %s\n", field, fieldErrs[field].Message))
	}

	p.printBox("PLEASE FIX THE FOLLOWING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSubmissionResult outputs the stored record after a successful submit.
func (p *Printer) PrintSubmissionResult(record *db.JobRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ID:      %s\n", record.ID))
	sb.WriteString(fmt.Sprintf("Status:  %s\n", record.Status))
	sb.WriteString("\nYour posting is pending review and will appear\non the board once approved.")

	p.printBox("SUBMISSION RECEIVED", sb.String())
}

func bulletList(items []string) string {
	var sb strings.Builder
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	return sb.String()
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
