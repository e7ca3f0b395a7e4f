// Package jobs defines the job submission model, its closed enumerations, and
// the validation rules applied before a posting is accepted for review.
package jobs

import (
	"github.com/google/uuid"
)

// JobSubmission is the transient, client-held shape of a job posting. It is
// collected across the multi-step form and discarded after a successful
// submit. Multi-valued fields carry no ordering guarantee.
type JobSubmission struct {
	// Basic information
	Title          string `json:"title" validate:"required,min=5,max=255"`
	Company        string `json:"company" validate:"required,min=2,max=255"`
	CompanyWebsite string `json:"companyWebsite,omitempty" validate:"omitempty,url,max=500"`
	CompanySize    string `json:"companySize,omitempty" validate:"omitempty,oneof=1-10 11-50 51-200 201-500 501-1000 1000+"`
	Industry       string `json:"industry,omitempty" validate:"omitempty,max=100"`

	// Job details
	JobLevel       string `json:"jobLevel,omitempty" validate:"omitempty,oneof=entry mid senior lead principal director vp c-level"`
	EmploymentType string `json:"employmentType" validate:"required,oneof=full-time part-time contract freelance internship"`
	Department     string `json:"department,omitempty" validate:"omitempty,max=100"`

	// Location and remote work
	WorkArrangement      string `json:"workArrangement" validate:"required,oneof=remote hybrid onsite"`
	Timezone             string `json:"timezone,omitempty"`
	Country              string `json:"country,omitempty" validate:"omitempty,max=100"`
	City                 string `json:"city,omitempty" validate:"required_unless=WorkArrangement remote,max=100"`
	SpecificLocation     string `json:"specificLocation,omitempty" validate:"omitempty,max=255"`
	RelocationAssistance bool   `json:"relocationAssistance,omitempty"`

	// Compensation
	SalaryMin      *int   `json:"salaryMin,omitempty" validate:"omitempty,min=0"`
	SalaryMax      *int   `json:"salaryMax,omitempty" validate:"omitempty,min=0"`
	Currency       string `json:"currency,omitempty" validate:"omitempty,oneof=USD EUR GBP CAD AUD INR JPY CNY"`
	SalaryType     string `json:"salaryType,omitempty" validate:"omitempty,oneof=annual hourly daily project"`
	EquityOffered  bool   `json:"equityOffered,omitempty"`
	BonusStructure string `json:"bonusStructure,omitempty" validate:"omitempty,max=255"`

	// Experience and education
	YearsExperience         string   `json:"yearsExperience,omitempty" validate:"omitempty,oneof=0-1 1-3 3-5 5-7 7-10 10+"`
	EducationLevel          string   `json:"educationLevel,omitempty" validate:"omitempty,oneof=none-required high-school associate bachelor master phd"`
	RequiredCertifications  []string `json:"requiredCertifications,omitempty"`
	PreferredCertifications []string `json:"preferredCertifications,omitempty"`

	// Skills and accessibility focus
	RequiredSkills          []string `json:"requiredSkills" validate:"required,min=1"`
	PreferredSkills         []string `json:"preferredSkills,omitempty"`
	WCAGLevel               string   `json:"wcagLevel,omitempty" validate:"omitempty,oneof=wcag-2.0 wcag-2.1 wcag-2.2 wcag-3.0"`
	AccessibilityFocus      []string `json:"accessibilityFocus" validate:"required,min=1"`
	AssistiveTechExperience []string `json:"assistiveTechExperience,omitempty"`

	// Job description (rich text; length floors apply to the stripped text)
	Description         string `json:"description" validate:"required,max=10000"`
	KeyResponsibilities string `json:"keyResponsibilities" validate:"required,max=5000"`
	Requirements        string `json:"requirements" validate:"required,max=5000"`
	NiceToHave          string `json:"niceToHave,omitempty" validate:"omitempty,max=3000"`

	// Benefits
	Benefits                []string `json:"benefits,omitempty"`
	ProfessionalDevelopment bool     `json:"professionalDevelopment,omitempty"`
	HealthInsurance         bool     `json:"healthInsurance,omitempty"`
	Retirement              bool     `json:"retirement,omitempty"`
	PTODetails              string   `json:"ptoDetails,omitempty" validate:"omitempty,max=255"`

	// Application details
	ContactEmail        string `json:"contactEmail" validate:"required,email,max=255"`
	ApplicationDeadline string `json:"applicationDeadline,omitempty"`
	ExpectedStartDate   string `json:"expectedStartDate,omitempty" validate:"omitempty,max=100"`
	VisaSponsorship     bool   `json:"visaSponsorship,omitempty"`
	SecurityClearance   bool   `json:"securityClearance,omitempty"`
	TravelRequired      string `json:"travelRequired,omitempty" validate:"omitempty,oneof=none occasional regular frequent"`

	// Additional info
	AdditionalNotes string `json:"additionalNotes,omitempty" validate:"omitempty,max=2000"`

	// Legacy display fields kept for backward compatibility with records
	// written before the structured location/salary fields existed. Derived
	// from the structured fields at submit time.
	Location    string `json:"location,omitempty"`
	Type        string `json:"type,omitempty"`
	SalaryRange string `json:"salaryRange,omitempty"`
}

// SubmissionRequest is the wire payload accepted by POST /api/jobs/submit.
// The idempotency key is generated once per logical submission on the client
// and reused across retries so a double-submit cannot create two records.
type SubmissionRequest struct {
	JobSubmission
	IdempotencyKey uuid.UUID `json:"idempotencyKey,omitempty"`
}
