// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package listinguc_test

import (
	"testing"
	"time"

	"github.com/momeni/yacht-charter/pkg/core/cerr"
	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/momeni/yacht-charter/pkg/core/usecase/listinguc"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)

func validDraft() model.Draft {
	return model.Draft{
		Name:            "Sea Breeze",
		Description:     "A calm ride along the Mandovi",
		Category:        model.CategoryPremium,
		Capacity:        "8",
		ManufactureYear: "2015",
		CrewCount:       "2",
		Dimensions:      model.Dimensions{Length: "40", Width: "12", Height: "9"},
		Location:        model.Location{Label: "Panjim", Value: "panjim"},
		Price: model.Pricing{
			Sailing:   model.Rates{PeakTime: 5000, NonPeakTime: 4000},
			Anchoring: model.Rates{PeakTime: 2000, NonPeakTime: 1500},
		},
		UniqueFeatures: "Sundeck, Jacuzzi",
	}
}

func TestValidateAcceptsValidDraft(t *testing.T) {
	assert.Empty(t, listinguc.Validate(validDraft(), now))
}

func TestValidateReportsEveryField(t *testing.T) {
	fe := listinguc.Validate(model.Draft{CrewCount: "x"}, now)
	assert.Equal(t, cerr.FieldErrors{
		"name":        "Yacht name is required",
		"capacity":    "Please enter a valid capacity",
		"mnfyear":     "Manufacturer year is required",
		"location":    "Pickup location is required",
		"YachtType":   "Category is required",
		"crewCount":   "Please enter a valid crew count",
		"price":       "Peak Hours Sailing Price is required",
		"description": "Description is required",
	}, fe)
	assert.Equal(t, []string{
		"YachtType", "capacity", "crewCount", "description",
		"location", "mnfyear", "name", "price",
	}, fe.Keys())
}

func TestValidateYearBounds(t *testing.T) {
	cases := []struct {
		year string
		ok   bool
	}{
		{"1899", false},
		{"1900", true},
		{"2026", true},
		{"2027", false},
		{"20x6", false},
	}
	for _, c := range cases {
		d := validDraft()
		d.ManufactureYear = c.year
		fe := listinguc.Validate(d, now)
		if c.ok {
			assert.Empty(t, fe, "year %s", c.year)
			continue
		}
		assert.Equal(t, cerr.FieldErrors{
			"mnfyear": "Please enter a valid year between 1900 and 2026",
		}, fe, "year %s", c.year)
	}
}

func TestValidateNumbers(t *testing.T) {
	d := validDraft()
	d.Capacity = "0"
	d.CrewCount = "-1"
	fe := listinguc.Validate(d, now)
	assert.Equal(t, []string{"capacity", "crewCount"}, fe.Keys())

	d = validDraft()
	d.CrewCount = "0"
	d.Name = "   "
	d.Price.Sailing.PeakTime = 0
	fe = listinguc.Validate(d, now)
	assert.Equal(t, []string{"name", "price"}, fe.Keys())
}

func TestValidateUnknownCategory(t *testing.T) {
	d := validDraft()
	d.Category = "yacht-ish"
	assert.Equal(t, cerr.FieldErrors{
		"YachtType": "Please choose a valid category",
	}, listinguc.Validate(d, now))
}
