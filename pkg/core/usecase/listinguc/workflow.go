// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package listinguc

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/momeni/yacht-charter/pkg/core/cerr"
	"github.com/momeni/yacht-charter/pkg/core/model"
)

// Step is a step of the listing workflow.
type Step int

// Valid values for the Step enum.
const (
	StepForm Step = iota + 1
	StepReview
	StepDone
)

// String returns the lowercase name of s.
func (s Step) String() string {
	switch s {
	case StepForm:
		return "form"
	case StepReview:
		return "review"
	case StepDone:
		return "done"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// MarshalText implements the encoding.TextMarshaler interface.
func (s Step) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// These errors indicate an operation which is not allowed in the
// current step of a workflow.
var (
	ErrNotEditable = errors.New("draft is only editable in the form step")
	ErrNotReviewed = errors.New("workflow is not in the review step")
	ErrSubmitting  = errors.New("submission is already in progress")
)

// Workflow is one create or edit listing flow. It owns its Form, so all
// draft mutations pass through it and are serialized by its mutex.
//
// Once discarded, a Workflow ignores all late updates (e.g., media
// uploads which complete after the user navigated away) silently.
type Workflow struct {
	ID uuid.UUID

	mu         sync.Mutex
	step       Step
	form       *Form
	edit       bool
	listingID  string
	review     *Review
	submitting bool
	discarded  bool
	used       time.Time // last registry access
}

func newWorkflow(form *Form, listingID string) *Workflow {
	return &Workflow{
		ID:        uuid.New(),
		step:      StepForm,
		form:      form,
		edit:      listingID != "",
		listingID: listingID,
	}
}

// Snapshot is a consistent copy of the state of a workflow.
type Snapshot struct {
	ID        uuid.UUID        `json:"id"`
	Step      Step             `json:"step"`
	Edit      bool             `json:"edit"`
	ListingID string           `json:"listingId,omitempty"`
	Draft     model.Draft      `json:"draft"`
	Errors    cerr.FieldErrors `json:"errors,omitempty"`
	Review    *Review          `json:"review,omitempty"`
}

// Snapshot returns a copy of the current state of wf.
func (wf *Workflow) Snapshot() Snapshot {
	wf.mu.Lock()
	defer wf.mu.Unlock()
	s := Snapshot{
		ID:        wf.ID,
		Step:      wf.step,
		Edit:      wf.edit,
		ListingID: wf.listingID,
		Draft:     wf.form.Draft(),
		Errors:    wf.form.Errors(),
	}
	if wf.review != nil {
		r := *wf.review
		s.Review = &r
	}
	return s
}

// Update runs fn with the form of wf, so it may mutate the draft.
// It fails if wf is not in the form step. Updating a discarded
// workflow is a no-op.
func (wf *Workflow) Update(fn func(f *Form) error) error {
	wf.mu.Lock()
	defer wf.mu.Unlock()
	if wf.discarded {
		return nil
	}
	if wf.step != StepForm {
		return cerr.Conflict(ErrNotEditable)
	}
	return fn(wf.form)
}

// AddMedia appends the urls image references to the draft of wf.
// It follows the Update rules, so an upload which completes after a
// move to the review step is rejected instead of being left out of
// the staged payload.
func (wf *Workflow) AddMedia(urls ...string) error {
	return wf.Update(func(f *Form) error {
		f.AddMedia(urls...)
		return nil
	})
}

// Submit validates the draft using the year of now. On failure, wf
// stays in the form step and a *cerr.ValidationError is returned which
// lists every invalid field. Otherwise, the draft is staged and wf
// moves to the review step.
func (wf *Workflow) Submit(now time.Time) (*Review, error) {
	wf.mu.Lock()
	defer wf.mu.Unlock()
	if wf.discarded {
		return nil, cerr.Conflict(ErrDiscarded)
	}
	if wf.step != StepForm {
		return nil, cerr.Conflict(ErrNotEditable)
	}
	if err := wf.form.validate(now).Err(); err != nil {
		return nil, err
	}
	p, err := Stage(wf.form.draft)
	if err != nil {
		return nil, err
	}
	wf.review = &Review{Payload: p, Edit: wf.edit, ListingID: wf.listingID}
	wf.step = StepReview
	r := *wf.review
	return &r, nil
}

// Back returns from the review step to the form step, keeping the
// draft intact.
func (wf *Workflow) Back() error {
	wf.mu.Lock()
	defer wf.mu.Unlock()
	if wf.step != StepReview {
		return cerr.Conflict(ErrNotReviewed)
	}
	if wf.submitting {
		return cerr.Conflict(ErrSubmitting)
	}
	wf.review = nil
	wf.step = StepForm
	return nil
}

// Discard abandons wf. Later updates will be ignored.
func (wf *Workflow) Discard() {
	wf.mu.Lock()
	defer wf.mu.Unlock()
	wf.discarded = true
}

func (wf *Workflow) touch(now time.Time) {
	wf.mu.Lock()
	defer wf.mu.Unlock()
	wf.used = now
}

func (wf *Workflow) lastUsed() time.Time {
	wf.mu.Lock()
	defer wf.mu.Unlock()
	return wf.used
}

// Discarded reports if wf was discarded.
func (wf *Workflow) Discarded() bool {
	wf.mu.Lock()
	defer wf.mu.Unlock()
	return wf.discarded
}

// beginConfirm marks wf as submitting and returns its staged review.
func (wf *Workflow) beginConfirm() (Review, error) {
	wf.mu.Lock()
	defer wf.mu.Unlock()
	switch {
	case wf.discarded:
		return Review{}, cerr.Conflict(ErrDiscarded)
	case wf.step != StepReview:
		return Review{}, cerr.Conflict(ErrNotReviewed)
	case wf.submitting:
		return Review{}, cerr.Conflict(ErrSubmitting)
	}
	wf.submitting = true
	return *wf.review, nil
}

// endConfirm records the outcome of a submission. A failed submission
// keeps wf in the review step, so it may be retried or edited again.
func (wf *Workflow) endConfirm(id string, err error) {
	wf.mu.Lock()
	defer wf.mu.Unlock()
	wf.submitting = false
	if err != nil || wf.discarded {
		return
	}
	wf.listingID = id
	wf.step = StepDone
}

// RemoveMedia drops the i-th image reference of the draft of wf.
// It follows the Update rules.
func (wf *Workflow) RemoveMedia(i int) error {
	return wf.Update(func(f *Form) error {
		return f.RemoveMedia(i)
	})
}
