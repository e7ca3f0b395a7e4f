package db

import (
	"time"

	"github.com/google/uuid"
)

// JobRecord is the persisted representation of a job posting. It is created
// once with a pending status, flipped to approved or rejected by an external
// moderation process, and read-only afterwards. Multi-valued fields are
// stored as JSON-encoded strings and decoded on read; a malformed stored
// value decodes to an empty list rather than failing the read.
type JobRecord struct {
	ID             uuid.UUID `json:"id"`
	IdempotencyKey uuid.UUID `json:"-"`

	// Basic information
	Title          string `json:"title"`
	Company        string `json:"company"`
	CompanyWebsite string `json:"companyWebsite,omitempty"`
	CompanySize    string `json:"companySize,omitempty"`
	Industry       string `json:"industry,omitempty"`

	// Job details
	JobLevel       string `json:"jobLevel,omitempty"`
	EmploymentType string `json:"employmentType"`
	Department     string `json:"department,omitempty"`

	// Location
	WorkArrangement      string `json:"workArrangement"`
	Timezone             string `json:"timezone,omitempty"`
	Country              string `json:"country,omitempty"`
	City                 string `json:"city,omitempty"`
	SpecificLocation     string `json:"specificLocation,omitempty"`
	RelocationAssistance bool   `json:"relocationAssistance,omitempty"`

	// Compensation
	SalaryMin      *int   `json:"salaryMin,omitempty"`
	SalaryMax      *int   `json:"salaryMax,omitempty"`
	Currency       string `json:"currency,omitempty"`
	SalaryType     string `json:"salaryType,omitempty"`
	EquityOffered  bool   `json:"equityOffered,omitempty"`
	BonusStructure string `json:"bonusStructure,omitempty"`

	// Experience and education
	YearsExperience         string   `json:"yearsExperience,omitempty"`
	EducationLevel          string   `json:"educationLevel,omitempty"`
	RequiredCertifications  []string `json:"requiredCertifications,omitempty"`
	PreferredCertifications []string `json:"preferredCertifications,omitempty"`

	// Skills and accessibility focus
	RequiredSkills          []string `json:"requiredSkills,omitempty"`
	PreferredSkills         []string `json:"preferredSkills,omitempty"`
	WCAGLevel               string   `json:"wcagLevel,omitempty"`
	AccessibilityFocus      []string `json:"accessibilityFocus,omitempty"`
	AssistiveTechExperience []string `json:"assistiveTechExperience,omitempty"`

	// Description
	Description         string `json:"description"`
	KeyResponsibilities string `json:"keyResponsibilities"`
	Requirements        string `json:"requirements"`
	NiceToHave          string `json:"niceToHave,omitempty"`

	// Benefits
	Benefits                []string `json:"benefits,omitempty"`
	ProfessionalDevelopment bool     `json:"professionalDevelopment,omitempty"`
	HealthInsurance         bool     `json:"healthInsurance,omitempty"`
	Retirement              bool     `json:"retirement,omitempty"`
	PTODetails              string   `json:"ptoDetails,omitempty"`

	// Application details
	ContactEmail        string     `json:"contactEmail"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`
	ExpectedStartDate   string     `json:"expectedStartDate,omitempty"`
	VisaSponsorship     bool       `json:"visaSponsorship,omitempty"`
	SecurityClearance   bool       `json:"securityClearance,omitempty"`
	TravelRequired      string     `json:"travelRequired,omitempty"`

	AdditionalNotes string `json:"additionalNotes,omitempty"`

	// Legacy display fields
	Location    string `json:"location,omitempty"`
	Type        string `json:"type,omitempty"`
	SalaryRange string `json:"salaryRange,omitempty"`

	// Meta
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
