// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package dashboarduc contains the owner dashboard UseCase. The
// dashboard sections are fetched concurrently and each section fails
// on its own, so one unavailable section never hides the others.
package dashboarduc

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/momeni/yacht-charter/pkg/core/cerr"
	"github.com/momeni/yacht-charter/pkg/core/log"
	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/momeni/yacht-charter/pkg/core/repo"
	"golang.org/x/sync/errgroup"
)

// Section names one dashboard section.
type Section string

// Dashboard sections.
const (
	SectionYachts        Section = "yachts"
	SectionEarnings      Section = "earnings"
	SectionCurrentRides  Section = "currentRides"
	SectionPreviousRides Section = "previousRides"
)

// Dashboard is the owner dashboard. A section which could not be
// loaded is left empty and its error is recorded in Errors.
type Dashboard struct {
	Yachts        []model.ListingDetail `json:"yachts"`
	Earnings      *model.Earnings       `json:"earnings,omitempty"`
	CurrentRides  []model.Booking       `json:"currentRides"`
	PreviousRides []model.Booking       `json:"previousRides"`
	Errors        map[Section]error     `json:"-"`
}

// ErrorMessages returns the section errors as strings.
func (d *Dashboard) ErrorMessages() map[Section]string {
	if len(d.Errors) == 0 {
		return nil
	}
	m := make(map[Section]string, len(d.Errors))
	for s, err := range d.Errors {
		m[s] = err.Error()
	}
	return m
}

// UseCase represents the dashboard use case.
type UseCase struct {
	listings repo.Listings
	bookings repo.Bookings
}

// New instantiates a dashboard use case.
func New(l repo.Listings, b repo.Bookings) *UseCase {
	return &UseCase{listings: l, bookings: b}
}

// Load fetches all dashboard sections concurrently. Each ride is
// enriched with its yacht details, and a ride whose details could not
// be fetched is kept bare. The returned error is only non-nil if ctx
// is done, section errors are reported in Dashboard.Errors instead.
func (uc *UseCase) Load(ctx context.Context) (*Dashboard, error) {
	d := &Dashboard{}
	var mu sync.Mutex
	fail := func(s Section, err error) {
		log.Warn(
			ctx, "dashboard section failed",
			slog.String("section", string(s)), log.Err("err", err),
		)
		mu.Lock()
		defer mu.Unlock()
		if d.Errors == nil {
			d.Errors = make(map[Section]error)
		}
		d.Errors[s] = err
	}
	var g errgroup.Group
	g.Go(func() error {
		ll, err := uc.listings.Mine(ctx)
		if err != nil {
			fail(SectionYachts, err)
			return nil
		}
		d.Yachts = ll
		return nil
	})
	g.Go(func() error {
		e, err := uc.bookings.Earnings(ctx)
		if err != nil {
			fail(SectionEarnings, err)
			return nil
		}
		d.Earnings = e
		return nil
	})
	g.Go(func() error {
		rides, err := uc.bookings.Current(ctx)
		if err != nil {
			fail(SectionCurrentRides, err)
			return nil
		}
		d.CurrentRides = uc.enrich(ctx, rides)
		return nil
	})
	g.Go(func() error {
		rides, err := uc.bookings.Previous(ctx)
		if err != nil {
			fail(SectionPreviousRides, err)
			return nil
		}
		d.PreviousRides = uc.enrich(ctx, rides)
		return nil
	})
	_ = g.Wait() // branches never fail the group
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

// enrich fetches the yacht details of rides concurrently.
func (uc *UseCase) enrich(ctx context.Context, rides []model.Booking) []model.Booking {
	out := make([]model.Booking, len(rides))
	var g errgroup.Group
	for i, r := range rides {
		i, r := i, r
		out[i] = r
		if r.YachtID == "" {
			continue
		}
		g.Go(func() error {
			l, err := uc.listings.Fetch(ctx, r.YachtID)
			if err != nil {
				log.Debug(
					ctx, "keeping bare ride",
					slog.String("ride", r.ID), log.Err("err", err),
				)
				return nil
			}
			out[i].Yacht = l
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// Ride reports one previous ride, enriched with its yacht details.
func (uc *UseCase) Ride(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, cerr.BadRequest(fmt.Errorf("ride id is missing"))
	}
	r, err := uc.bookings.PreviousRide(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading ride %q: %w", id, err)
	}
	rides := uc.enrich(ctx, []model.Booking{*r})
	return &rides[0], nil
}
