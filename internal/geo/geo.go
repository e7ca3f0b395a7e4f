// Package geo provides best-effort environment detection for the posting
// form: timezone, country, and a currency default derived from country.
// Every lookup is optional; a failed detection leaves the field empty for
// manual entry and is never surfaced to the user.
package geo

import "context"

// Environment holds the detected defaults used to pre-fill a submission.
// Zero-valued fields mean detection did not produce an answer.
type Environment struct {
	Timezone string
	Country  string
	Currency string
}

// Detector resolves environment defaults. Implementations must be safe to
// call once per form session and must swallow their own failures.
type Detector interface {
	Detect(ctx context.Context) Environment
}

// DetectorFunc adapts a function to the Detector interface.
type DetectorFunc func(ctx context.Context) Environment

// Detect implements Detector.
func (f DetectorFunc) Detect(ctx context.Context) Environment { return f(ctx) }
