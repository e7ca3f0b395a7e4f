package presenter

import (
	"fmt"
	"time"

	"github.com/accessibilityjobs/jobboard/internal/db"
	"github.com/accessibilityjobs/jobboard/internal/jobs"
)

// JobView is everything the detail template needs, with all conditional
// display decisions already made.
type JobView struct {
	ID                  string
	Title               string
	Company             string
	ArrangementLabel    string
	EmploymentTypeLabel string
	JobLevelLabel       string
	Location            string
	Salary              *string
	SalaryTypeLabel     string
	PostedAgo           string
	Description         string
	KeyResponsibilities string
	Requirements        string
	NiceToHave          string
	RequiredSkills      []string
	PreferredSkills     []string
	AccessibilityFocus  []string
	AssistiveTech       []string
	Benefits            []string
	WCAGLabel           string
	Apply               ApplyAction
	ContactEmail        string
	CompanyWebsite      string
}

// BuildJobView derives the display values for one approved record.
func BuildJobView(rec *db.JobRecord) JobView {
	view := JobView{
		ID:                  rec.ID.String(),
		Title:               rec.Title,
		Company:             rec.Company,
		ArrangementLabel:    jobs.LabelFor(jobs.WorkArrangements, rec.WorkArrangement),
		EmploymentTypeLabel: jobs.LabelFor(jobs.EmploymentTypes, rec.EmploymentType),
		Location:            DisplayLocation(rec),
		Salary:              FormatSalaryRange(rec.SalaryMin, rec.SalaryMax, rec.Currency),
		PostedAgo:           relativeTime(rec.CreatedAt, time.Now()),
		Description:         rec.Description,
		KeyResponsibilities: rec.KeyResponsibilities,
		Requirements:        rec.Requirements,
		NiceToHave:          rec.NiceToHave,
		RequiredSkills:      rec.RequiredSkills,
		PreferredSkills:     rec.PreferredSkills,
		AccessibilityFocus:  rec.AccessibilityFocus,
		AssistiveTech:       rec.AssistiveTechExperience,
		Benefits:            rec.Benefits,
		Apply:               ApplyMethod(rec),
		CompanyWebsite:      rec.CompanyWebsite,
	}
	if rec.JobLevel != "" {
		view.JobLevelLabel = jobs.LabelFor(jobs.JobLevels, rec.JobLevel)
	}
	if rec.SalaryType != "" {
		view.SalaryTypeLabel = jobs.LabelFor(jobs.SalaryTypes, rec.SalaryType)
	}
	if rec.WCAGLevel != "" {
		view.WCAGLabel = jobs.LabelFor(jobs.WCAGLevels, rec.WCAGLevel)
	}
	if view.Apply.Kind == ApplyEmail {
		view.ContactEmail = rec.ContactEmail
	}

	// Legacy rows carry only the pre-formatted salary string.
	if view.Salary == nil && rec.SalaryRange != "" {
		s := rec.SalaryRange
		view.Salary = &s
	}
	return view
}

// relativeTime renders a coarse "posted N days ago" style timestamp.
func relativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour")
	case d < 30*24*time.Hour:
		return plural(int(d.Hours()/24), "day")
	case d < 365*24*time.Hour:
		return plural(int(d.Hours()/(24*30)), "month")
	default:
		return plural(int(d.Hours()/(24*365)), "year")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
