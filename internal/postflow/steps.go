package postflow

// StepCount is the number of steps in the posting flow.
const StepCount = 6

// Step describes one screen of the posting flow.
type Step struct {
	Number int
	Title  string
	Hint   string
}

var steps = [StepCount]Step{
	{1, "Basic Information", "Job title, company, and how the role is structured."},
	{2, "Location", "Work arrangement and where the role is based."},
	{3, "Compensation", "Salary range, currency, and benefits."},
	{4, "Experience & Education", "Seniority, background, and certifications."},
	{5, "Skills & Accessibility Focus", "Required skills and the accessibility areas this role covers."},
	{6, "Description & Contact", "Full description, responsibilities, requirements, and how to apply."},
}

// Steps returns the ordered step metadata.
func Steps() []Step {
	return steps[:]
}

// StepInfo returns the metadata for a step number, clamping out-of-range
// values to the nearest valid step.
func StepInfo(n int) Step {
	if n < 1 {
		n = 1
	}
	if n > StepCount {
		n = StepCount
	}
	return steps[n-1]
}
