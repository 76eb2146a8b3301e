// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package listinguc_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/momeni/yacht-charter/pkg/core/cerr"
	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/momeni/yacht-charter/pkg/core/usecase/listinguc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageDerivesPayload(t *testing.T) {
	d := validDraft()
	d.Images = []string{"https://img/1.jpg"}
	d.Addons = []model.AddonService{{Service: model.AddonDecoration, PricePerHour: 1500}}
	d.Packages = []string{"2_hours_sailing_1_hour_anchorage"}

	p, err := listinguc.Stage(d)
	require.NoError(t, err)
	f := p.Fields()
	assert.Equal(t, "Sea Breeze", f.Name)
	assert.Equal(t, "panjim", f.PickupAt)
	assert.Equal(t, "Panjim", f.Location)
	assert.Equal(t, 8, f.Capacity)
	assert.Equal(t, 2015, f.MnfYear)
	assert.Equal(t, "2", f.CrewCount)
	assert.Equal(t, []model.Crew{{}, {}}, f.Crews)
	assert.Equal(t, "40x12x9", f.Dimension)
	assert.Equal(t, []string{"Sundeck", "Jacuzzi"}, f.Amenities)
	assert.False(t, f.Availability)
	assert.Equal(t, d.Addons, f.AddonServices)
	assert.Equal(t, d.Packages, f.PackageTypes)
}

func TestStagePrefersExplicitAmenities(t *testing.T) {
	d := validDraft()
	d.Amenities = []string{"Wifi"}
	p, err := listinguc.Stage(d)
	require.NoError(t, err)
	assert.Equal(t, []string{"Wifi"}, p.Fields().Amenities)

	for text, want := range map[string][]string{
		"":                  {""},
		" Wifi , ,Bar,":     {"Wifi", "", "Bar", ""},
		"Sundeck":           {"Sundeck"},
		"Sundeck,Jacuzzi  ": {"Sundeck", "Jacuzzi"},
	} {
		d = validDraft()
		d.UniqueFeatures = text
		p, err = listinguc.Stage(d)
		require.NoError(t, err)
		assert.Equal(t, want, p.Fields().Amenities, "features %q", text)
	}
}

func TestStageAvailability(t *testing.T) {
	d := validDraft()
	d.AvailabilityFrom = &model.TimeOfDay{Hour: 9}
	p, err := listinguc.Stage(d)
	require.NoError(t, err)
	assert.False(t, p.Available())

	d.AvailabilityTo = &model.TimeOfDay{Hour: 18, Minute: 30}
	p, err = listinguc.Stage(d)
	require.NoError(t, err)
	assert.True(t, p.Available())
	assert.Equal(t, "09:00", p.Fields().From)
	assert.Equal(t, "18:30", p.Fields().To)
}

func TestStagePayloadIsImmutable(t *testing.T) {
	d := validDraft()
	d.Images = []string{"a"}
	p, err := listinguc.Stage(d)
	require.NoError(t, err)

	d.Images[0] = "changed"
	f := p.Fields()
	f.Images[0] = "changed too"
	assert.Equal(t, []string{"a"}, p.Fields().Images)
}

func TestStageEncodesBackendNames(t *testing.T) {
	p, err := listinguc.Stage(validDraft())
	require.NoError(t, err)
	data, err := json.Marshal(p)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "panjim", m["pickupat"])
	assert.Equal(t, "premium", m["YachtType"])
	assert.EqualValues(t, 2015, m["mnfyear"])
	assert.Equal(t, "2", m["crewCount"])
}

func TestStageRejectsMalformedNumbers(t *testing.T) {
	d := validDraft()
	d.Capacity = "many"
	_, err := listinguc.Stage(d)
	var ve *cerr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"capacity"}, ve.Fields.Keys())
}
