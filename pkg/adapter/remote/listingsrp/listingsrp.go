// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package listingsrp implements the repo.Listings gateway over the
// owner endpoints of the remote marketplace API.
package listingsrp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"
	"github.com/momeni/yacht-charter/pkg/adapter/remote/apiclient"
	"github.com/momeni/yacht-charter/pkg/core/cerr"
	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/momeni/yacht-charter/pkg/core/repo"
)

// ErrMissingID indicates that a created listing was reported without
// its identifier.
var ErrMissingID = errors.New("created listing has no id")

// Repo is the listings gateway.
type Repo struct {
	c *apiclient.Client
}

// New instantiates a listings gateway.
func New(c *apiclient.Client) *Repo {
	return &Repo{c: c}
}

var _ repo.Listings = (*Repo)(nil)

// Create implements repo.Listings.Create using POST /owner/create.
func (r *Repo) Create(ctx context.Context, p model.Payload) (string, error) {
	const op = "listings.Create"
	var raw json.RawMessage
	if err := r.c.Do(ctx, op, http.MethodPost, "/owner/create", p, &raw); err != nil {
		return "", err
	}
	var created struct {
		ID  string `json:"_id"`
		Alt string `json:"id"`
	}
	if err := json.Unmarshal(apiclient.Unwrap(raw, "yacht"), &created); err != nil {
		return "", &cerr.RemoteError{Op: op, Err: fmt.Errorf("decoding id: %w", err)}
	}
	switch {
	case created.ID != "":
		return created.ID, nil
	case created.Alt != "":
		return created.Alt, nil
	default:
		return "", &cerr.RemoteError{Op: op, Err: ErrMissingID}
	}
}

// Update implements repo.Listings.Update using POST /owner/update/:id.
func (r *Repo) Update(ctx context.Context, id string, p model.Payload) error {
	return r.c.Do(
		ctx, "listings.Update", http.MethodPost,
		"/owner/update/"+url.PathEscape(id), p, nil,
	)
}

// Delete implements repo.Listings.Delete using DELETE /owner/delete/:id.
func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.c.Do(
		ctx, "listings.Delete", http.MethodDelete,
		"/owner/delete/"+url.PathEscape(id), nil, nil,
	)
}

// Fetch implements repo.Listings.Fetch using GET /owner/me/yatch/:id.
func (r *Repo) Fetch(ctx context.Context, id string) (*model.ListingDetail, error) {
	const op = "listings.Fetch"
	var raw json.RawMessage
	err := r.c.Do(
		ctx, op, http.MethodGet, "/owner/me/yatch/"+url.PathEscape(id),
		nil, &raw,
	)
	if err != nil {
		return nil, err
	}
	l := &model.ListingDetail{}
	if err := json.Unmarshal(apiclient.Unwrap(raw, "yacht"), l); err != nil {
		return nil, &cerr.RemoteError{Op: op, Err: fmt.Errorf("decoding listing: %w", err)}
	}
	return l, nil
}

// Mine implements repo.Listings.Mine using GET /owner/me/yatchs.
func (r *Repo) Mine(ctx context.Context) ([]model.ListingDetail, error) {
	const op = "listings.Mine"
	var raw json.RawMessage
	if err := r.c.Do(ctx, op, http.MethodGet, "/owner/me/yatchs", nil, &raw); err != nil {
		return nil, err
	}
	var ll []model.ListingDetail
	if err := json.Unmarshal(apiclient.Unwrap(raw, "yachts"), &ll); err != nil {
		return nil, &cerr.RemoteError{Op: op, Err: fmt.Errorf("decoding listings: %w", err)}
	}
	return ll, nil
}
