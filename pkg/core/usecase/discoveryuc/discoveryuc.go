// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package discoveryuc contains the customer-side discovery UseCase.
package discoveryuc

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/momeni/yacht-charter/pkg/core/cerr"
	"github.com/momeni/yacht-charter/pkg/core/log"
	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/momeni/yacht-charter/pkg/core/repo"
)

// UseCase represents the discovery use case.
type UseCase struct {
	discovery repo.Discovery
}

// New instantiates a discovery use case.
func New(d repo.Discovery) *UseCase {
	return &UseCase{discovery: d}
}

// ListAll lists all published yachts.
func (uc *UseCase) ListAll(ctx context.Context) ([]model.ListingDetail, error) {
	ll, err := uc.discovery.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing yachts: %w", err)
	}
	return ll, nil
}

// Top lists the top rated yachts.
func (uc *UseCase) Top(ctx context.Context) ([]model.ListingDetail, error) {
	ll, err := uc.discovery.Top(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing top yachts: %w", err)
	}
	return ll, nil
}

// Ideal searches for the yachts which match q.
func (uc *UseCase) Ideal(ctx context.Context, q model.YachtQuery) ([]model.ListingDetail, error) {
	var fe cerr.FieldErrors
	fe.Assert(strings.TrimSpace(q.Location) != "", "location", "Pickup location is required")
	fe.Assert(!q.StartDate.IsZero(), "startDate", "Start date is required")
	fe.Assert(q.Duration > 0, "duration", "Please enter a valid duration")
	fe.Assert(q.Capacity > 0, "capacity", "Please enter a valid capacity")
	if err := fe.Err(); err != nil {
		return nil, err
	}
	ll, err := uc.discovery.Ideal(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("searching yachts: %w", err)
	}
	return ll, nil
}

// Book creates a booking. It is a single shot call, so a failed call
// should not be repeated blindly.
func (uc *UseCase) Book(ctx context.Context, r model.BookingRequest) (*model.BookingReceipt, error) {
	var fe cerr.FieldErrors
	fe.Assert(r.YachtID != "", "yachtId", "Yacht is required")
	fe.Assert(!r.StartDate.IsZero(), "startDate", "Start date is required")
	fe.Assert(r.Sailing >= 0 && r.Anchoring >= 0 && r.Sailing+r.Anchoring > 0,
		"sailingTime", "Please enter a valid duration")
	fe.Assert(r.Capacity > 0, "capacity", "Please enter a valid capacity")
	if r.PackageType != "" {
		fe.Assert(model.IsPackage(r.PackageType), "packages", "Unknown package")
	}
	for _, a := range r.Addons {
		if !fe.Assert(model.IsAddon(a), "addonServices", "Unknown add-on service") {
			break
		}
	}
	if err := fe.Err(); err != nil {
		return nil, err
	}
	rc, err := uc.discovery.Book(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("booking yacht %q: %w", r.YachtID, err)
	}
	log.Info(
		ctx, "booking created",
		slog.String("yacht", r.YachtID), slog.String("booking", rc.Booking.ID),
	)
	return rc, nil
}
