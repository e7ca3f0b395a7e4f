package presenter

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/accessibilityjobs/jobboard/internal/db"
)

var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// blockedSubstrings marks addresses that were generated or used as
// placeholders during imports rather than supplied by an employer.
var blockedSubstrings = []string{
	"accessibilityjobs.net", // our own domain
	"@nan",
	"nan@",
	"@example.com",
	"@test.com",
}

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)

// IsRealContactEmail reports whether an address looks like a genuine employer
// contact. Imported postings without a published email were assigned
// careers@<company-slug>.com, so a "careers" local part whose domain equals
// its own sanitized form is treated as generated. That knowingly rejects some
// legitimate careers@ addresses; those postings fall back to the company
// website affordance.
func IsRealContactEmail(email string) bool {
	addr := strings.ToLower(strings.TrimSpace(email))
	if addr == "" {
		return false
	}

	for _, blocked := range blockedSubstrings {
		if strings.Contains(addr, blocked) {
			return false
		}
	}

	if local, domain, ok := strings.Cut(addr, "@"); ok && local == "careers" {
		slug := nonAlnumRe.ReplaceAllString(strings.TrimSuffix(domain, ".com"), "")
		if domain == slug+".com" {
			return false
		}
	}

	return emailRe.MatchString(addr)
}

// Apply affordance kinds.
const (
	ApplyEmail   = "email"
	ApplyWebsite = "website"
	ApplyPending = "pending"
)

// ApplyAction describes the apply affordance to render for a record.
type ApplyAction struct {
	Kind  string
	Label string
	URL   string
}

// ApplyMethod selects the apply affordance: a real contact email wins, then
// the company website, then a contact-pending state with a web search link so
// the page is never a dead end.
func ApplyMethod(rec *db.JobRecord) ApplyAction {
	if IsRealContactEmail(rec.ContactEmail) {
		return ApplyAction{
			Kind:  ApplyEmail,
			Label: "Apply via Email",
			URL:   fmt.Sprintf("mailto:%s?subject=%s", rec.ContactEmail, url.QueryEscape("Application for "+rec.Title)),
		}
	}
	if rec.CompanyWebsite != "" {
		return ApplyAction{
			Kind:  ApplyWebsite,
			Label: "Apply on Company Website",
			URL:   rec.CompanyWebsite,
		}
	}
	return ApplyAction{
		Kind:  ApplyPending,
		Label: "Contact information pending",
		URL:   "https://www.google.com/search?q=" + url.QueryEscape(rec.Company+" "+rec.Title+" careers"),
	}
}
