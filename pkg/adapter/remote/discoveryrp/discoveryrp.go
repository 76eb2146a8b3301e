// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package discoveryrp implements the repo.Discovery gateway over the
// customer and booking endpoints.
package discoveryrp

import (
	"context"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/momeni/yacht-charter/pkg/adapter/remote/apiclient"
	"github.com/momeni/yacht-charter/pkg/core/cerr"
	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/momeni/yacht-charter/pkg/core/repo"
)

// Repo is the discovery gateway.
type Repo struct {
	c *apiclient.Client
}

// New instantiates a discovery gateway.
func New(c *apiclient.Client) *Repo {
	return &Repo{c: c}
}

var _ repo.Discovery = (*Repo)(nil)

// ListAll implements repo.Discovery.ListAll.
func (r *Repo) ListAll(ctx context.Context) ([]model.ListingDetail, error) {
	return r.list(ctx, "discovery.ListAll", http.MethodGet, "/customer/listAll", nil)
}

// Top implements repo.Discovery.Top.
func (r *Repo) Top(ctx context.Context) ([]model.ListingDetail, error) {
	return r.list(ctx, "discovery.Top", http.MethodGet, "/customer/topYatch", nil)
}

// Ideal implements repo.Discovery.Ideal.
func (r *Repo) Ideal(ctx context.Context, q model.YachtQuery) ([]model.ListingDetail, error) {
	return r.list(ctx, "discovery.Ideal", http.MethodPost, "/booking/idealYatchs", q)
}

func (r *Repo) list(ctx context.Context, op, method, path string, in any) ([]model.ListingDetail, error) {
	var raw json.RawMessage
	if err := r.c.Do(ctx, op, method, path, in, &raw); err != nil {
		return nil, err
	}
	var ll []model.ListingDetail
	if err := json.Unmarshal(apiclient.Unwrap(raw, "yachts"), &ll); err != nil {
		return nil, &cerr.RemoteError{Op: op, Err: fmt.Errorf("decoding yachts: %w", err)}
	}
	return ll, nil
}

// Book implements repo.Discovery.Book.
func (r *Repo) Book(ctx context.Context, req model.BookingRequest) (*model.BookingReceipt, error) {
	rc := &model.BookingReceipt{}
	if err := r.c.Do(ctx, "discovery.Book", http.MethodPost, "/booking/create", req, rc); err != nil {
		return nil, err
	}
	return rc, nil
}
