// Package postflow drives the multi-step posting flow used by the post
// command: step navigation, environment-based draft enrichment, and the
// final validated submit.
package postflow

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/accessibilityjobs/jobboard/internal/db"
	"github.com/accessibilityjobs/jobboard/internal/geo"
	"github.com/accessibilityjobs/jobboard/internal/jobs"
	"github.com/accessibilityjobs/jobboard/internal/presenter"
)

// ErrAlreadySubmitted is returned when Submit is called after a successful
// submission.
var ErrAlreadySubmitted = errors.New("posting already submitted")

// ErrNotOnFinalStep is returned when Submit is called before the review step.
var ErrNotOnFinalStep = errors.New("submit is only available on the final step")

// Submitter delivers a finished submission to the board.
type Submitter interface {
	Submit(ctx context.Context, req *jobs.SubmissionRequest) (*db.JobRecord, error)
}

// Controller holds one in-progress job posting. Navigation never validates
// or mutates the draft; validation happens once, at submit. The idempotency
// key is fixed at construction so retrying a failed submit cannot create a
// duplicate record.
type Controller struct {
	mu        sync.Mutex
	step      int
	draft     jobs.JobSubmission
	key       uuid.UUID
	detector  geo.Detector
	submitter Submitter
	submitted bool
}

// New creates a controller positioned on the first step with an empty draft.
func New(detector geo.Detector, submitter Submitter) *Controller {
	return &Controller{
		step:      1,
		key:       uuid.New(),
		detector:  detector,
		submitter: submitter,
	}
}

// Start kicks off best-effort environment enrichment in the background and
// returns immediately, so a slow geolocation lookup never delays the first
// prompt. Detection failures are swallowed and only fields the user has not
// already filled are touched.
func (c *Controller) Start(ctx context.Context) {
	if c.detector == nil {
		return
	}
	go func() {
		env := c.detector.Detect(ctx)

		c.mu.Lock()
		defer c.mu.Unlock()
		if c.draft.Timezone == "" {
			c.draft.Timezone = env.Timezone
		}
		if c.draft.Country == "" {
			c.draft.Country = env.Country
		}
		if c.draft.Currency == "" {
			c.draft.Currency = env.Currency
		}
	}()
}

// Step returns the current step number, 1..StepCount.
func (c *Controller) Step() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// Next advances one step and returns the new position. It stops at the final
// step rather than wrapping or erroring.
func (c *Controller) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.step < StepCount {
		c.step++
	}
	return c.step
}

// Previous moves one step back, stopping at the first step. The draft is
// never altered by navigation.
func (c *Controller) Previous() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.step > 1 {
		c.step--
	}
	return c.step
}

// Draft returns a copy of the current draft.
func (c *Controller) Draft() jobs.JobSubmission {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Update applies an edit to the draft under the controller lock.
func (c *Controller) Update(edit func(*jobs.JobSubmission)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	edit(&c.draft)
}

// Submitted reports whether the posting reached the board.
func (c *Controller) Submitted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitted
}

// Submit validates the draft and delivers it. Only available on the final
// step. On failure the controller stays on the final step with the draft and
// idempotency key intact, so the user can fix the draft and retry.
func (c *Controller) Submit(ctx context.Context) (*db.JobRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.submitted {
		return nil, ErrAlreadySubmitted
	}
	if c.step != StepCount {
		return nil, ErrNotOnFinalStep
	}

	sub := c.draft
	normalize(&sub)

	if fieldErrs := jobs.Validate(&sub); fieldErrs != nil {
		return nil, fieldErrs
	}

	record, err := c.submitter.Submit(ctx, &jobs.SubmissionRequest{
		JobSubmission:  sub,
		IdempotencyKey: c.key,
	})
	if err != nil {
		return nil, fmt.Errorf("submit posting: %w", err)
	}

	c.submitted = true
	return record, nil
}

// normalize derives the legacy display fields older records carry from the
// structured fields.
func normalize(sub *jobs.JobSubmission) {
	sub.Type = sub.WorkArrangement

	switch {
	case sub.SpecificLocation != "":
		sub.Location = sub.SpecificLocation
	case sub.City != "":
		sub.Location = sub.City
	case sub.WorkArrangement == jobs.ArrangementRemote:
		sub.Location = "Remote"
	}

	if s := presenter.FormatSalaryRange(sub.SalaryMin, sub.SalaryMax, sub.Currency); s != nil {
		sub.SalaryRange = *s
	}
}
