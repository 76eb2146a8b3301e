// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package listinguc

import (
	"fmt"
	"strings"

	"github.com/momeni/yacht-charter/pkg/core/cerr"
	"github.com/momeni/yacht-charter/pkg/core/model"
)

// Review is the staged hand-off between the form and the review steps.
// It carries the exact payload which will be submitted.
type Review struct {
	Payload   model.Payload `json:"payload"`
	Edit      bool          `json:"edit"`
	ListingID string        `json:"listingId,omitempty"` // edit mode
}

// Stage derives the submission payload from the d draft. The d draft
// must be valid (see Validate), otherwise, a *cerr.ValidationError is
// returned. Stage performs no remote calls.
//
// Amenities are taken from the explicit amenities list, or from the
// comma separated unique features text if that list is empty. Crews
// are expanded to as many empty placeholders as the crew count.
// The availability flag is set iff both ends of the window are set.
func Stage(d model.Draft) (model.Payload, error) {
	var fe cerr.FieldErrors
	capacity, err := atoi(d.Capacity)
	fe.Assert(err == nil, string(FieldCapacity), "Please enter a valid capacity")
	year, err := atoi(d.ManufactureYear)
	fe.Assert(err == nil, string(FieldYear), "Manufacturer year is required")
	crew, err := atoi(d.CrewCount)
	fe.Assert(
		err == nil && crew >= 0,
		string(FieldCrewCount), "Please enter a valid crew count",
	)
	if err := fe.Err(); err != nil {
		return model.Payload{}, fmt.Errorf("staging draft: %w", err)
	}
	amenities := d.Amenities
	if len(amenities) == 0 {
		amenities = splitFeatures(d.UniqueFeatures)
	}
	dimension := d.Dimension
	if d.Dimensions != (model.Dimensions{}) {
		dimension = d.Dimensions.Compose()
	}
	f := model.PayloadFields{
		Name:           d.Name,
		PickupAt:       d.Location.Value,
		Location:       d.Location.Label,
		Description:    d.Description,
		Price:          d.Price,
		Availability:   d.AvailabilityFrom != nil && d.AvailabilityTo != nil,
		Amenities:      amenities,
		Capacity:       capacity,
		MnfYear:        year,
		Dimension:      dimension,
		Crews:          make([]model.Crew, crew),
		Images:         d.Images,
		YachtType:      d.Category,
		Dimensions:     d.Dimensions,
		UniqueFeatures: d.UniqueFeatures,
		CrewCount:      strings.TrimSpace(d.CrewCount),
		AddonServices:  d.Addons,
		PackageTypes:   d.Packages,
	}
	if d.AvailabilityFrom != nil {
		f.From = d.AvailabilityFrom.String()
	}
	if d.AvailabilityTo != nil {
		f.To = d.AvailabilityTo.String()
	}
	return model.NewPayload(f), nil
}

// splitFeatures splits the comma separated s text and trims every
// item. Blank items are kept, so each comma yields one more amenity.
func splitFeatures(s string) []string {
	items := strings.Split(s, ",")
	for i, item := range items {
		items[i] = strings.TrimSpace(item)
	}
	return items
}
