// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package dashboarduc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/momeni/yacht-charter/pkg/core/cerr"
	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/momeni/yacht-charter/pkg/core/usecase/dashboarduc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeListings struct {
	mine    []model.ListingDetail
	mineErr error
	details map[string]model.ListingDetail
}

func (f *fakeListings) Create(context.Context, model.Payload) (string, error) {
	return "", errors.New("unexpected")
}

func (f *fakeListings) Update(context.Context, string, model.Payload) error {
	return errors.New("unexpected")
}

func (f *fakeListings) Delete(context.Context, string) error {
	return errors.New("unexpected")
}

func (f *fakeListings) Fetch(_ context.Context, id string) (*model.ListingDetail, error) {
	l, ok := f.details[id]
	if !ok {
		return nil, &cerr.RemoteError{Op: "listings.Fetch", StatusCode: 404}
	}
	return &l, nil
}

func (f *fakeListings) Mine(context.Context) ([]model.ListingDetail, error) {
	return f.mine, f.mineErr
}

type fakeBookings struct {
	current, previous []model.Booking
	earnings          *model.Earnings
	earningsErr       error
}

func (f *fakeBookings) Current(context.Context) ([]model.Booking, error) {
	return f.current, nil
}

func (f *fakeBookings) Previous(context.Context) ([]model.Booking, error) {
	return f.previous, nil
}

func (f *fakeBookings) PreviousRide(_ context.Context, id string) (*model.Booking, error) {
	for _, b := range f.previous {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, &cerr.RemoteError{Op: "bookings.PreviousRide", StatusCode: 404}
}

func (f *fakeBookings) Earnings(context.Context) (*model.Earnings, error) {
	return f.earnings, f.earningsErr
}

func TestLoadIsolatesFailures(t *testing.T) {
	fl := &fakeListings{
		mineErr: errors.New("yachts unavailable"),
		details: map[string]model.ListingDetail{"Y1": {ID: "Y1", Name: "Sea Breeze"}},
	}
	fb := &fakeBookings{
		current:     []model.Booking{{ID: "B1", YachtID: "Y1"}, {ID: "B2", YachtID: "Y404"}},
		previous:    []model.Booking{{ID: "B3", YachtID: "Y1"}},
		earningsErr: errors.New("earnings unavailable"),
	}
	d, err := dashboarduc.New(fl, fb).Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, d.Errors, 2)
	assert.EqualError(t, d.Errors[dashboarduc.SectionYachts], "yachts unavailable")
	assert.EqualError(t, d.Errors[dashboarduc.SectionEarnings], "earnings unavailable")
	assert.Equal(t, map[dashboarduc.Section]string{
		dashboarduc.SectionYachts:   "yachts unavailable",
		dashboarduc.SectionEarnings: "earnings unavailable",
	}, d.ErrorMessages())

	require.Len(t, d.CurrentRides, 2)
	assert.Equal(t, "Sea Breeze", d.CurrentRides[0].Yacht.Name)
	assert.Nil(t, d.CurrentRides[1].Yacht, "failed enrichment keeps the bare ride")
	assert.Equal(t, "B2", d.CurrentRides[1].ID)
	require.Len(t, d.PreviousRides, 1)
	assert.Equal(t, "Y1", d.PreviousRides[0].Yacht.ID)
}

func TestLoadAllSections(t *testing.T) {
	fl := &fakeListings{mine: []model.ListingDetail{{ID: "Y1"}}}
	fb := &fakeBookings{earnings: &model.Earnings{Total: 42000}}
	d, err := dashboarduc.New(fl, fb).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, d.Errors)
	assert.Nil(t, d.ErrorMessages())
	assert.Len(t, d.Yachts, 1)
	assert.Equal(t, 42000.0, d.Earnings.Total)
}

func TestRide(t *testing.T) {
	fl := &fakeListings{details: map[string]model.ListingDetail{"Y1": {ID: "Y1"}}}
	fb := &fakeBookings{previous: []model.Booking{{ID: "B3", YachtID: "Y1"}}}
	uc := dashboarduc.New(fl, fb)

	r, err := uc.Ride(context.Background(), "B3")
	require.NoError(t, err)
	assert.Equal(t, "Y1", r.Yacht.ID)

	_, err = uc.Ride(context.Background(), "B9")
	var re *cerr.RemoteError
	assert.ErrorAs(t, err, &re)
	_, err = uc.Ride(context.Background(), "")
	assert.Error(t, err)
}
