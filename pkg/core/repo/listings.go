// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package repo contains the ports which use cases depend on. The
// adapters layer implements them over the remote marketplace API,
// the external image host, and the durable credential stores.
package repo

import (
	"context"

	"github.com/momeni/yacht-charter/pkg/core/model"
)

// Listings is the owner listing gateway. All operations are single
// shot: they are not retried and carry no idempotency key, hence,
// calling Create twice may create two listings.
// Non-success responses are reported as *cerr.RemoteError values.
type Listings interface {
	// Create persists a new listing and returns its identifier.
	Create(ctx context.Context, p model.Payload) (id string, err error)

	// Update replaces the id listing with the p payload.
	Update(ctx context.Context, id string, p model.Payload) error

	// Delete removes the id listing irrecoverably. Callers must obtain
	// an explicit confirmation from the user beforehand.
	Delete(ctx context.Context, id string) error

	// Fetch reports the id listing of the current owner.
	Fetch(ctx context.Context, id string) (*model.ListingDetail, error)

	// Mine lists all listings of the current owner.
	Mine(ctx context.Context) ([]model.ListingDetail, error)
}
