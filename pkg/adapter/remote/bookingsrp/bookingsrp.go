// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package bookingsrp implements the repo.Bookings gateway over the
// owner rides and earnings endpoints.
package bookingsrp

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"
	"github.com/momeni/yacht-charter/pkg/adapter/remote/apiclient"
	"github.com/momeni/yacht-charter/pkg/core/cerr"
	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/momeni/yacht-charter/pkg/core/repo"
)

// Repo is the bookings gateway.
type Repo struct {
	c *apiclient.Client
}

// New instantiates a bookings gateway.
func New(c *apiclient.Client) *Repo {
	return &Repo{c: c}
}

var _ repo.Bookings = (*Repo)(nil)

// Current implements repo.Bookings.Current.
func (r *Repo) Current(ctx context.Context) ([]model.Booking, error) {
	return r.rides(ctx, "bookings.Current", "/owner/current/rides")
}

// Previous implements repo.Bookings.Previous.
func (r *Repo) Previous(ctx context.Context) ([]model.Booking, error) {
	return r.rides(ctx, "bookings.Previous", "/owner/prev/rides")
}

func (r *Repo) rides(ctx context.Context, op, path string) ([]model.Booking, error) {
	var raw json.RawMessage
	if err := r.c.Do(ctx, op, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	var rides []model.Booking
	if err := json.Unmarshal(apiclient.Unwrap(raw, "bookings"), &rides); err != nil {
		return nil, &cerr.RemoteError{Op: op, Err: fmt.Errorf("decoding rides: %w", err)}
	}
	return rides, nil
}

// PreviousRide implements repo.Bookings.PreviousRide.
func (r *Repo) PreviousRide(ctx context.Context, id string) (*model.Booking, error) {
	const op = "bookings.PreviousRide"
	var raw json.RawMessage
	err := r.c.Do(
		ctx, op, http.MethodGet, "/owner/prev/ride/"+url.PathEscape(id),
		nil, &raw,
	)
	if err != nil {
		return nil, err
	}
	b := &model.Booking{}
	if err := json.Unmarshal(apiclient.Unwrap(raw, "booking"), b); err != nil {
		return nil, &cerr.RemoteError{Op: op, Err: fmt.Errorf("decoding ride: %w", err)}
	}
	return b, nil
}

// Earnings implements repo.Bookings.Earnings.
func (r *Repo) Earnings(ctx context.Context) (*model.Earnings, error) {
	e := &model.Earnings{}
	if err := r.c.Do(ctx, "bookings.Earnings", http.MethodGet, "/owner/me/earnings", nil, e); err != nil {
		return nil, err
	}
	return e, nil
}
