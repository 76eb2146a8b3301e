// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package listinguc

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/momeni/yacht-charter/pkg/core/cerr"
	"github.com/momeni/yacht-charter/pkg/core/model"
)

// MinManufactureYear is the oldest accepted manufacture year.
const MinManufactureYear = 1900

// Validate checks the d draft and returns its field errors. All rules
// are evaluated, so every invalid field is reported at once. The upper
// bound of the manufacture year is the year of now.
// The returned map is empty (nil) if d is valid.
func Validate(d model.Draft, now time.Time) cerr.FieldErrors {
	var fe cerr.FieldErrors
	fe.Assert(
		strings.TrimSpace(d.Name) != "",
		string(FieldName), "Yacht name is required",
	)
	capacity, err := atoi(d.Capacity)
	fe.Assert(
		err == nil && capacity > 0,
		string(FieldCapacity), "Please enter a valid capacity",
	)
	if strings.TrimSpace(d.ManufactureYear) == "" {
		fe.Add(string(FieldYear), "Manufacturer year is required")
	} else {
		maxYear := now.Year()
		year, err := atoi(d.ManufactureYear)
		fe.Assert(
			err == nil && year >= MinManufactureYear && year <= maxYear,
			string(FieldYear), fmt.Sprintf(
				"Please enter a valid year between %d and %d",
				MinManufactureYear, maxYear,
			),
		)
	}
	fe.Assert(
		d.Location.Value != "",
		string(FieldLocation), "Pickup location is required",
	)
	switch {
	case d.Category == model.CategoryInvalid:
		fe.Add(string(FieldCategory), "Category is required")
	case d.Category.Validate() != nil:
		fe.Add(string(FieldCategory), "Please choose a valid category")
	}
	crew, err := atoi(d.CrewCount)
	fe.Assert(
		err == nil && crew >= 0,
		string(FieldCrewCount), "Please enter a valid crew count",
	)
	fe.Assert(
		d.Price.Sailing.PeakTime > 0,
		string(FieldPrice), "Peak Hours Sailing Price is required",
	)
	fe.Assert(
		strings.TrimSpace(d.Description) != "",
		string(FieldDescription), "Description is required",
	)
	return fe
}

// ValidateNow validates d against the current year.
func ValidateNow(d model.Draft) cerr.FieldErrors {
	return Validate(d, time.Now())
}

func atoi(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
