package jobs

// Option pairs a stored enum value with its human-readable label. The same
// tables drive both the interactive form and validation, so the options a
// user can pick from and the values the validator accepts cannot drift apart.
type Option struct {
	Value string
	Label string
}

// Work arrangement values.
const (
	ArrangementRemote = "remote"
	ArrangementHybrid = "hybrid"
	ArrangementOnsite = "onsite"
)

// Job status values.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// WorkArrangements lists the accepted work arrangement values.
var WorkArrangements = []Option{
	{Value: ArrangementRemote, Label: "Remote"},
	{Value: ArrangementHybrid, Label: "Hybrid"},
	{Value: ArrangementOnsite, Label: "Onsite"},
}

// EmploymentTypes lists the accepted employment type values.
var EmploymentTypes = []Option{
	{Value: "full-time", Label: "Full-time"},
	{Value: "part-time", Label: "Part-time"},
	{Value: "contract", Label: "Contract"},
	{Value: "freelance", Label: "Freelance"},
	{Value: "internship", Label: "Internship"},
}

// JobLevels lists the accepted seniority values.
var JobLevels = []Option{
	{Value: "entry", Label: "Entry Level"},
	{Value: "mid", Label: "Mid Level"},
	{Value: "senior", Label: "Senior"},
	{Value: "lead", Label: "Lead"},
	{Value: "principal", Label: "Principal"},
	{Value: "director", Label: "Director"},
	{Value: "vp", Label: "Vice President"},
	{Value: "c-level", Label: "C-Level Executive"},
}

// CompanySizes lists the accepted headcount bands.
var CompanySizes = []Option{
	{Value: "1-10", Label: "1-10 employees"},
	{Value: "11-50", Label: "11-50 employees"},
	{Value: "51-200", Label: "51-200 employees"},
	{Value: "201-500", Label: "201-500 employees"},
	{Value: "501-1000", Label: "501-1,000 employees"},
	{Value: "1000+", Label: "1,000+ employees"},
}

// ExperienceLevels lists the accepted years-of-experience bands.
var ExperienceLevels = []Option{
	{Value: "0-1", Label: "0-1 years"},
	{Value: "1-3", Label: "1-3 years"},
	{Value: "3-5", Label: "3-5 years"},
	{Value: "5-7", Label: "5-7 years"},
	{Value: "7-10", Label: "7-10 years"},
	{Value: "10+", Label: "10+ years"},
}

// EducationLevels lists the accepted education requirements.
var EducationLevels = []Option{
	{Value: "none-required", Label: "No degree required"},
	{Value: "high-school", Label: "High School / GED"},
	{Value: "associate", Label: "Associate Degree"},
	{Value: "bachelor", Label: "Bachelor's Degree"},
	{Value: "master", Label: "Master's Degree"},
	{Value: "phd", Label: "Ph.D."},
}

// WCAGLevels lists the accepted WCAG versions.
var WCAGLevels = []Option{
	{Value: "wcag-2.0", Label: "WCAG 2.0"},
	{Value: "wcag-2.1", Label: "WCAG 2.1"},
	{Value: "wcag-2.2", Label: "WCAG 2.2"},
	{Value: "wcag-3.0", Label: "WCAG 3.0 (W3C Silver)"},
}

// Currencies lists the accepted 3-letter currency codes.
var Currencies = []Option{
	{Value: "USD", Label: "USD ($)"},
	{Value: "EUR", Label: "EUR (€)"},
	{Value: "GBP", Label: "GBP (£)"},
	{Value: "CAD", Label: "CAD ($)"},
	{Value: "AUD", Label: "AUD ($)"},
	{Value: "INR", Label: "INR (₹)"},
	{Value: "JPY", Label: "JPY (¥)"},
	{Value: "CNY", Label: "CNY (¥)"},
}

// SalaryTypes lists the accepted pay period values.
var SalaryTypes = []Option{
	{Value: "annual", Label: "Annual"},
	{Value: "hourly", Label: "Hourly"},
	{Value: "daily", Label: "Daily"},
	{Value: "project", Label: "Per Project"},
}

// TravelRequirements lists the accepted travel frequency values.
var TravelRequirements = []Option{
	{Value: "none", Label: "No travel required"},
	{Value: "occasional", Label: "Occasional (1-2 times/year)"},
	{Value: "regular", Label: "Regular (Monthly)"},
	{Value: "frequent", Label: "Frequent (Weekly)"},
}

// AccessibilityFocusAreas lists the suggested focus areas shown in the form.
// Free-form entries are accepted; only presence of at least one is enforced.
var AccessibilityFocusAreas = []string{
	"Web Accessibility",
	"Mobile Accessibility (iOS)",
	"Mobile Accessibility (Android)",
	"Desktop Applications",
	"Document Accessibility (PDF)",
	"Video & Media Accessibility",
	"Gaming Accessibility",
	"AR/VR Accessibility",
	"IoT & Smart Devices",
	"Kiosk & ATM Accessibility",
}

// CommonSkills lists the suggested skills shown in the form.
var CommonSkills = []string{
	"ARIA (Accessible Rich Internet Applications)",
	"HTML5 Semantics",
	"CSS for Accessibility",
	"JavaScript Accessibility",
	"Manual Testing",
	"Automated Testing",
	"Color Contrast Analysis",
	"Keyboard Navigation",
	"Focus Management",
	"Alternative Text Writing",
	"WCAG Auditing",
	"Accessibility Remediation",
	"Inclusive Design Principles",
}

// Certifications lists the suggested accessibility certifications.
var Certifications = []string{
	"CPACC (Certified Professional in Accessibility Core Competencies)",
	"WAS (Web Accessibility Specialist)",
	"CPWA (Certified Professional in Web Accessibility)",
	"IAAP Certification",
	"Section 508 Trusted Tester",
	"DHS Trusted Tester",
	"ACTCP (Accessible Technology Certified Professional)",
}

// AssistiveTech lists the suggested assistive technology entries.
var AssistiveTech = []string{
	"JAWS (Screen Reader)",
	"NVDA (Screen Reader)",
	"VoiceOver (macOS/iOS)",
	"TalkBack (Android)",
	"ANDI (Accessibility Testing)",
	"Axe DevTools",
	"Wave",
	"Dragon NaturallySpeaking (Voice Control)",
	"Magnification Software",
	"Switch Control",
	"Eye Tracking Technology",
}

// BenefitsOptions lists the suggested benefits entries.
var BenefitsOptions = []string{
	"Health Insurance (Medical, Dental, Vision)",
	"401(k) / Pension Plan",
	"Paid Time Off (PTO)",
	"Sick Leave",
	"Parental Leave",
	"Remote Work Stipend",
	"Home Office Equipment",
	"Professional Development Budget",
	"Conference Attendance",
	"Certification Reimbursement",
	"Flexible Work Hours",
	"Mental Health Support",
	"Life Insurance",
	"Disability Insurance",
	"Stock Options / Equity",
	"Performance Bonuses",
	"Relocation Assistance",
}

// Values returns just the stored values of an option table.
func Values(opts []Option) []string {
	vals := make([]string, len(opts))
	for i, o := range opts {
		vals[i] = o.Value
	}
	return vals
}

// LabelFor returns the display label for a stored value, or the value itself
// when it is not part of the table.
func LabelFor(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}
