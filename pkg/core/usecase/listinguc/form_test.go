// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package listinguc_test

import (
	"errors"
	"testing"

	"github.com/momeni/yacht-charter/pkg/core/cerr"
	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/momeni/yacht-charter/pkg/core/usecase/listinguc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetFieldKeepsOtherFields(t *testing.T) {
	f := listinguc.NewForm()
	require.NoError(t, f.SetField(listinguc.FieldName, "Sea Breeze"))
	require.NoError(t, f.SetField(listinguc.FieldCapacity, "8"))
	require.NoError(t, f.SetField(listinguc.FieldCategory, "luxury"))
	require.NoError(t, f.SetLocation("panjim"))

	d := f.Draft()
	assert.Equal(t, "Sea Breeze", d.Name)
	assert.Equal(t, "8", d.Capacity)
	assert.Equal(t, model.CategoryLuxury, d.Category)
	assert.Equal(t, model.Location{Label: "Panjim", Value: "panjim"}, d.Location)
}

func TestSetFieldRejectsUnknownValues(t *testing.T) {
	f := listinguc.NewForm()
	require.NoError(t, f.SetField(listinguc.FieldCategory, "premium"))
	before := f.Draft()

	err := f.SetField(listinguc.FieldCategory, "yacht-ish")
	var ce *cerr.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 400, ce.HTTPStatusCode)
	assert.ErrorIs(t, err, model.ErrUnknownCategory)

	assert.ErrorIs(t, f.SetField("price", "10"), listinguc.ErrUnknownField)
	assert.ErrorIs(t, f.SetLocation("atlantis"), model.ErrUnknownLocation)
	assert.ErrorIs(t, f.SelectPackages("forever_sailing"), model.ErrUnknownPackage)
	assert.Equal(t, before, f.Draft())
}

func TestSetDimensionComposes(t *testing.T) {
	f := listinguc.NewForm()
	require.NoError(t, f.SetDimension(model.AxisLength, "40"))
	assert.Equal(t, "40xx", f.Draft().Dimension)
	require.NoError(t, f.SetDimension(model.AxisWidth, "12"))
	require.NoError(t, f.SetDimension(model.AxisHeight, "9"))
	d := f.Draft()
	assert.Equal(t, "40x12x9", d.Dimension)
	assert.Equal(t, model.Dimensions{Length: "40", Width: "12", Height: "9"}, d.Dimensions)
	assert.ErrorIs(t, f.SetDimension("depth", "3"), model.ErrUnknownAxis)
}

func TestSetPriceChangesOneRate(t *testing.T) {
	f := listinguc.NewForm()
	require.NoError(t, f.SetPrice(model.ModeSailing, model.BandPeak, 5000))
	require.NoError(t, f.SetPrice(model.ModeAnchoring, model.BandNonPeak, 1200))
	assert.Equal(t, model.Pricing{
		Sailing:   model.Rates{PeakTime: 5000},
		Anchoring: model.Rates{NonPeakTime: 1200},
	}, f.Draft().Price)
	assert.ErrorIs(t, f.SetPrice(model.ModeSailing, model.BandPeak, -1), model.ErrNegativeRate)
	assert.ErrorIs(t, f.SetPrice("flying", model.BandPeak, 1), model.ErrUnknownRate)
}

func TestAddonSelectionAndPricing(t *testing.T) {
	f := listinguc.NewForm()
	require.NoError(t, f.SelectAddons(model.AddonPhotographer))
	require.NoError(t, f.SetAddonPrice(model.AddonPhotographer, 800))

	require.NoError(t, f.SelectAddons(model.AddonPhotographer, model.AddonDecoration))
	assert.Equal(t, []model.AddonService{
		{Service: model.AddonPhotographer, PricePerHour: 800},
		{Service: model.AddonDecoration, PricePerHour: 0},
	}, f.Draft().Addons)

	require.NoError(t, f.SetAddonPrice(model.AddonDecoration, 1500))
	assert.Equal(t, []model.AddonService{
		{Service: model.AddonPhotographer, PricePerHour: 800},
		{Service: model.AddonDecoration, PricePerHour: 1500},
	}, f.Draft().Addons)

	assert.ErrorIs(t, f.SetAddonPrice(model.AddonDancers, 100), listinguc.ErrAddonNotSelected)
	assert.ErrorIs(t, f.SelectAddons("Fireworks"), model.ErrUnknownAddon)
}

func TestMediaReferences(t *testing.T) {
	f := listinguc.NewForm()
	f.AddMedia("a", "b")
	f.AddMedia("c")
	require.NoError(t, f.RemoveMedia(1))
	assert.Equal(t, []string{"a", "c"}, f.Draft().Images)

	err := f.RemoveMedia(2)
	assert.True(t, errors.Is(err, listinguc.ErrIndexOutOfRange))
	assert.Equal(t, []string{"a", "c"}, f.Draft().Images)
}

func TestDraftIsACopy(t *testing.T) {
	f := listinguc.NewForm()
	f.AddMedia("a")
	from := model.TimeOfDay{Hour: 9}
	f.SetAvailability(&from, nil)

	d := f.Draft()
	d.Images[0] = "mutated"
	d.AvailabilityFrom.Hour = 23
	from.Hour = 11

	d = f.Draft()
	assert.Equal(t, []string{"a"}, d.Images)
	assert.Equal(t, 9, d.AvailabilityFrom.Hour)
	assert.Nil(t, d.AvailabilityTo)
}

func TestSetAmenitiesTrims(t *testing.T) {
	f := listinguc.NewForm()
	f.SetAmenities(" Wifi ", "", "Bar")
	assert.Equal(t, []string{"Wifi", "Bar"}, f.Draft().Amenities)
}
