package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/accessibilityjobs/jobboard/internal/jobs"
)

// jobColumns is the canonical column list shared by every jobs query. Scan
// order in scanJob must match.
const jobColumns = `id, idempotency_key, title, company, company_website, company_size, industry,
	job_level, employment_type, department,
	work_arrangement, timezone, country, city, specific_location, relocation_assistance,
	salary_min, salary_max, currency, salary_type, equity_offered, bonus_structure,
	years_experience, education_level, required_certifications, preferred_certifications,
	required_skills, preferred_skills, wcag_level, accessibility_focus, assistive_tech_experience,
	description, key_responsibilities, requirements, nice_to_have,
	benefits, professional_development, health_insurance, retirement, pto_details,
	contact_email, application_deadline, expected_start_date, visa_sponsorship, security_clearance, travel_required,
	additional_notes, location, type, salary_range,
	status, created_at, updated_at`

// CreateJob persists a validated submission as a new pending record. When the
// idempotency key was already used, the previously created record is returned
// instead of inserting a duplicate, so a retried or double-clicked submit is
// safe.
func (db *DB) CreateJob(ctx context.Context, sub *jobs.JobSubmission, idemKey uuid.UUID) (*JobRecord, error) {
	currency := sub.Currency
	if currency == "" {
		currency = "USD"
	}
	legacyType := sub.Type
	if legacyType == "" {
		legacyType = sub.WorkArrangement
	}
	deadline := parseDeadline(sub.ApplicationDeadline)

	row := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (idempotency_key, title, company, company_website, company_size, industry,
		                   job_level, employment_type, department,
		                   work_arrangement, timezone, country, city, specific_location, relocation_assistance,
		                   salary_min, salary_max, currency, salary_type, equity_offered, bonus_structure,
		                   years_experience, education_level, required_certifications, preferred_certifications,
		                   required_skills, preferred_skills, wcag_level, accessibility_focus, assistive_tech_experience,
		                   description, key_responsibilities, requirements, nice_to_have,
		                   benefits, professional_development, health_insurance, retirement, pto_details,
		                   contact_email, application_deadline, expected_start_date, visa_sponsorship, security_clearance, travel_required,
		                   additional_notes, location, type, salary_range, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		         $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
		         $31, $32, $33, $34, $35, $36, $37, $38, $39, $40, $41, $42, $43, $44, $45,
		         $46, $47, $48, $49, 'pending')
		 ON CONFLICT (idempotency_key) DO NOTHING
		 RETURNING `+jobColumns,
		idemKey, sub.Title, sub.Company, nullIfEmpty(sub.CompanyWebsite), nullIfEmpty(sub.CompanySize), nullIfEmpty(sub.Industry),
		nullIfEmpty(sub.JobLevel), sub.EmploymentType, nullIfEmpty(sub.Department),
		sub.WorkArrangement, nullIfEmpty(sub.Timezone), nullIfEmpty(sub.Country), nullIfEmpty(sub.City), nullIfEmpty(sub.SpecificLocation), sub.RelocationAssistance,
		sub.SalaryMin, sub.SalaryMax, currency, nullIfEmpty(sub.SalaryType), sub.EquityOffered, nullIfEmpty(sub.BonusStructure),
		nullIfEmpty(sub.YearsExperience), nullIfEmpty(sub.EducationLevel), encodeStringList(sub.RequiredCertifications), encodeStringList(sub.PreferredCertifications),
		encodeStringList(sub.RequiredSkills), encodeStringList(sub.PreferredSkills), nullIfEmpty(sub.WCAGLevel), encodeStringList(sub.AccessibilityFocus), encodeStringList(sub.AssistiveTechExperience),
		sub.Description, sub.KeyResponsibilities, sub.Requirements, nullIfEmpty(sub.NiceToHave),
		encodeStringList(sub.Benefits), sub.ProfessionalDevelopment, sub.HealthInsurance, sub.Retirement, nullIfEmpty(sub.PTODetails),
		sub.ContactEmail, deadline, nullIfEmpty(sub.ExpectedStartDate), sub.VisaSponsorship, sub.SecurityClearance, nullIfEmpty(sub.TravelRequired),
		nullIfEmpty(sub.AdditionalNotes), nullIfEmpty(sub.Location), legacyType, nullIfEmpty(sub.SalaryRange),
	)

	rec, err := db.scanJob(row)
	if err == pgx.ErrNoRows {
		// The key was seen before; hand back the record that insert created.
		return db.getJobByIdempotencyKey(ctx, idemKey)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return rec, nil
}

// GetJobByIDAndStatus retrieves one job gated by status. The public detail
// path always passes jobs.StatusApproved; any other status, or an unknown id,
// yields (nil, nil).
func (db *DB) GetJobByIDAndStatus(ctx context.Context, id uuid.UUID, status string) (*JobRecord, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1 AND status = $2`, id, status)

	rec, err := db.scanJob(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return rec, nil
}

func (db *DB) getJobByIdempotencyKey(ctx context.Context, key uuid.UUID) (*JobRecord, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE idempotency_key = $1`, key)

	rec, err := db.scanJob(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job by idempotency key: %w", err)
	}
	return rec, nil
}

// ListJobsOptions contains filters for listing jobs.
type ListJobsOptions struct {
	Status string
	Limit  int
	Offset int
}

// ListJobs lists jobs by status, newest first, with pagination.
func (db *DB) ListJobs(ctx context.Context, opts ListJobsOptions) ([]JobRecord, int, error) {
	status := opts.Status
	if status == "" {
		status = jobs.StatusApproved
	}

	var total int
	if err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM jobs WHERE status = $1`, status).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := db.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var records []JobRecord
	for rows.Next() {
		rec, err := db.scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, *rec)
	}
	return records, total, nil
}

// UpdateJobStatus flips a record's moderation status. The moderation workflow
// itself lives outside this service; this is the single mutation it performs.
func (db *DB) UpdateJobStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE jobs SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job not found: %s", id)
	}
	return nil
}

// scanJob reads one record from a row. Stored JSON list columns decode
// fail-soft: a malformed value is logged and treated as empty.
func (db *DB) scanJob(row pgx.Row) (*JobRecord, error) {
	var (
		rec                                                JobRecord
		idemKey                                            *uuid.UUID
		companyWebsite, companySize, industry              *string
		jobLevel, department                               *string
		timezone, country, city, specificLocation          *string
		salaryType, bonusStructure                         *string
		yearsExperience, educationLevel                    *string
		requiredCerts, preferredCerts                      *string
		requiredSkills, preferredSkills                    *string
		wcagLevel, accessibilityFocus, assistiveTech       *string
		niceToHave, benefits                               *string
		ptoDetails, expectedStartDate, travelRequired      *string
		additionalNotes, location, legacyType, salaryRange *string
	)

	err := row.Scan(&rec.ID, &idemKey, &rec.Title, &rec.Company, &companyWebsite, &companySize, &industry,
		&jobLevel, &rec.EmploymentType, &department,
		&rec.WorkArrangement, &timezone, &country, &city, &specificLocation, &rec.RelocationAssistance,
		&rec.SalaryMin, &rec.SalaryMax, &rec.Currency, &salaryType, &rec.EquityOffered, &bonusStructure,
		&yearsExperience, &educationLevel, &requiredCerts, &preferredCerts,
		&requiredSkills, &preferredSkills, &wcagLevel, &accessibilityFocus, &assistiveTech,
		&rec.Description, &rec.KeyResponsibilities, &rec.Requirements, &niceToHave,
		&benefits, &rec.ProfessionalDevelopment, &rec.HealthInsurance, &rec.Retirement, &ptoDetails,
		&rec.ContactEmail, &rec.ApplicationDeadline, &expectedStartDate, &rec.VisaSponsorship, &rec.SecurityClearance, &travelRequired,
		&additionalNotes, &location, &legacyType, &salaryRange,
		&rec.Status, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if idemKey != nil {
		rec.IdempotencyKey = *idemKey
	}
	rec.CompanyWebsite = deref(companyWebsite)
	rec.CompanySize = deref(companySize)
	rec.Industry = deref(industry)
	rec.JobLevel = deref(jobLevel)
	rec.Department = deref(department)
	rec.Timezone = deref(timezone)
	rec.Country = deref(country)
	rec.City = deref(city)
	rec.SpecificLocation = deref(specificLocation)
	rec.SalaryType = deref(salaryType)
	rec.BonusStructure = deref(bonusStructure)
	rec.YearsExperience = deref(yearsExperience)
	rec.EducationLevel = deref(educationLevel)
	rec.WCAGLevel = deref(wcagLevel)
	rec.NiceToHave = deref(niceToHave)
	rec.PTODetails = deref(ptoDetails)
	rec.ExpectedStartDate = deref(expectedStartDate)
	rec.TravelRequired = deref(travelRequired)
	rec.AdditionalNotes = deref(additionalNotes)
	rec.Location = deref(location)
	rec.Type = deref(legacyType)
	rec.SalaryRange = deref(salaryRange)

	rec.RequiredCertifications = db.decodeList(rec.ID, "required_certifications", requiredCerts)
	rec.PreferredCertifications = db.decodeList(rec.ID, "preferred_certifications", preferredCerts)
	rec.RequiredSkills = db.decodeList(rec.ID, "required_skills", requiredSkills)
	rec.PreferredSkills = db.decodeList(rec.ID, "preferred_skills", preferredSkills)
	rec.AccessibilityFocus = db.decodeList(rec.ID, "accessibility_focus", accessibilityFocus)
	rec.AssistiveTechExperience = db.decodeList(rec.ID, "assistive_tech_experience", assistiveTech)
	rec.Benefits = db.decodeList(rec.ID, "benefits", benefits)

	return &rec, nil
}

func (db *DB) decodeList(id uuid.UUID, column string, raw *string) []string {
	list, ok := tryDecodeStringList(raw)
	if !ok {
		db.logger.Warn().Str("job_id", id.String()).Str("column", column).
			Msg("malformed stored list, treating as empty")
	}
	return list
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// parseDeadline accepts the date formats the form produces. Unparseable input
// is dropped rather than rejecting the whole submission.
func parseDeadline(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
