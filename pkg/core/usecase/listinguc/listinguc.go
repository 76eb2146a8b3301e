// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package listinguc contains the listing UseCase which lets an owner
// create, edit, and delete yacht listings. A listing is authored in a
// Workflow which goes through three steps:
//  1. Form: the draft is edited field by field (see Form),
//  2. Review: the validated draft is staged as an immutable payload,
//  3. Done: the payload is submitted to the remote API exactly once.
//
// Validate and Stage are pure functions, so they may be used without
// a UseCase instance too.
package listinguc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/momeni/yacht-charter/pkg/core/cerr"
	"github.com/momeni/yacht-charter/pkg/core/log"
	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/momeni/yacht-charter/pkg/core/repo"
)

// These errors are returned by the listing use case.
var (
	ErrMissingListingID = errors.New("listing id is missing")
	ErrUnconfirmed      = errors.New("deletion is not confirmed")
	ErrDiscarded        = errors.New("workflow is discarded")
	ErrNoWorkflow       = errors.New("workflow not found")
)

// UseCase represents the listing use case. It holds the listings
// gateway and the registry of live workflows.
type UseCase struct {
	listings repo.Listings
	registry *Registry

	now          func() time.Time
	maxWorkflows int
	idleTimeout  time.Duration
}

// New instantiates a listing use case.
func New(l repo.Listings, opts ...Option) (*UseCase, error) {
	uc := &UseCase{listings: l}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	uc.registry = NewRegistry(uc.maxWorkflows, uc.idleTimeout, uc.now)
	return uc, nil
}

// Begin starts a create listing workflow with an empty draft.
func (uc *UseCase) Begin(ctx context.Context) (*Workflow, error) {
	return uc.register(ctx, newWorkflow(NewForm(), ""))
}

// BeginEdit fetches the id listing and starts an edit workflow whose
// draft is pre-populated from it. No workflow is started if id is
// empty or the listing cannot be fetched.
func (uc *UseCase) BeginEdit(ctx context.Context, id string) (*Workflow, error) {
	if id == "" {
		return nil, cerr.BadRequest(ErrMissingListingID)
	}
	l, err := uc.listings.Fetch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading listing %q: %w", id, err)
	}
	d := l.Draft()
	d.ID = id
	return uc.register(ctx, newWorkflow(NewFormFrom(d), id))
}

func (uc *UseCase) register(ctx context.Context, wf *Workflow) (*Workflow, error) {
	for _, old := range uc.registry.Add(wf) {
		log.Info(
			ctx, "idle listing workflow dropped",
			slog.String("id", old.ID.String()),
		)
	}
	log.Debug(
		ctx, "listing workflow started",
		slog.String("id", wf.ID.String()),
		slog.Bool("edit", wf.edit),
	)
	return wf, nil
}

// Workflow finds the id live workflow.
func (uc *UseCase) Workflow(id uuid.UUID) (*Workflow, error) {
	wf, ok := uc.registry.Get(id)
	if !ok {
		return nil, cerr.NotFound(fmt.Errorf("%s: %w", id, ErrNoWorkflow))
	}
	return wf, nil
}

// Submit validates and stages the draft of wf, moving it to the review
// step. The manufacture year is bounded by the current year.
func (uc *UseCase) Submit(wf *Workflow) (*Review, error) {
	return wf.Submit(uc.now())
}

// Confirm submits the staged payload of wf, creating a new listing or
// updating the edited listing. The gateway is called exactly once per
// confirmation and concurrent confirmations of wf are rejected.
// On failure, wf stays in the review step with its draft retained.
// On success, wf moves to the done step and the listing id is returned.
func (uc *UseCase) Confirm(ctx context.Context, wf *Workflow) (string, error) {
	r, err := wf.beginConfirm()
	if err != nil {
		return "", err
	}
	id := r.ListingID
	if r.Edit {
		err = uc.listings.Update(ctx, id, r.Payload)
	} else {
		id, err = uc.listings.Create(ctx, r.Payload)
	}
	wf.endConfirm(id, err)
	if err != nil {
		log.Warn(
			ctx, "listing submission failed",
			slog.String("workflow", wf.ID.String()),
			slog.Bool("edit", r.Edit),
			log.Err("err", err),
		)
		return "", fmt.Errorf("submitting listing: %w", err)
	}
	log.Info(
		ctx, "listing submitted",
		slog.String("workflow", wf.ID.String()),
		slog.String("listing", id),
		slog.Bool("edit", r.Edit),
	)
	uc.registry.Remove(wf.ID)
	return id, nil
}

// Discard abandons the id workflow. Late updates, such as pending
// media uploads, will be ignored.
func (uc *UseCase) Discard(id uuid.UUID) error {
	if _, ok := uc.registry.Remove(id); !ok {
		return cerr.NotFound(fmt.Errorf("%s: %w", id, ErrNoWorkflow))
	}
	return nil
}

// Delete removes the id listing. It refuses to call the gateway unless
// the deletion was confirmed explicitly since it is irreversible.
func (uc *UseCase) Delete(ctx context.Context, id string, confirmed bool) error {
	if id == "" {
		return cerr.BadRequest(ErrMissingListingID)
	}
	if !confirmed {
		return cerr.BadRequest(ErrUnconfirmed)
	}
	if err := uc.listings.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting listing %q: %w", id, err)
	}
	log.Info(ctx, "listing deleted", slog.String("listing", id))
	return nil
}

// Mine lists the listings of the current owner.
func (uc *UseCase) Mine(ctx context.Context) ([]model.ListingDetail, error) {
	ll, err := uc.listings.Mine(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing yachts: %w", err)
	}
	return ll, nil
}

// Fetch reports the id listing of the current owner.
func (uc *UseCase) Fetch(ctx context.Context, id string) (*model.ListingDetail, error) {
	if id == "" {
		return nil, cerr.BadRequest(ErrMissingListingID)
	}
	l, err := uc.listings.Fetch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading listing %q: %w", id, err)
	}
	return l, nil
}
