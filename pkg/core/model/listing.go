// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// PayloadFields lists the fields of a submission payload following the
// backend field names. It is a plain struct which may be filled freely,
// while the Payload type wraps it in order to make it immutable.
type PayloadFields struct {
	Name           string         `json:"name"`
	PickupAt       string         `json:"pickupat"`
	Location       string         `json:"location"`
	Description    string         `json:"description"`
	Price          Pricing        `json:"price"`
	Availability   bool           `json:"availability"`
	Amenities      []string       `json:"amenities"`
	Capacity       int            `json:"capacity"`
	MnfYear        int            `json:"mnfyear"`
	Dimension      string         `json:"dimension"`
	Crews          []Crew         `json:"crews"`
	Images         []string       `json:"images"`
	YachtType      Category       `json:"YachtType"`
	Dimensions     Dimensions     `json:"dimensions"`
	UniqueFeatures string         `json:"uniqueFeatures"`
	From           string         `json:"availabilityFrom"`
	To             string         `json:"availabilityTo"`
	CrewCount      string         `json:"crewCount"`
	AddonServices  []AddonService `json:"addonServices"`
	PackageTypes   []string       `json:"packageTypes"`
}

func (f PayloadFields) clone() PayloadFields {
	c := f
	c.Amenities = append([]string(nil), f.Amenities...)
	c.Crews = append([]Crew(nil), f.Crews...)
	c.Images = append([]string(nil), f.Images...)
	c.AddonServices = append([]AddonService(nil), f.AddonServices...)
	c.PackageTypes = append([]string(nil), f.PackageTypes...)
	return c
}

// Payload is the submission payload of a listing. It is derived from a
// validated Draft and may not be modified after its creation, so the
// reviewed data is exactly the submitted data. Use Fields in order to
// obtain a (deeply copied) view of its contents.
type Payload struct {
	f PayloadFields
}

// NewPayload wraps a deep copy of f as an immutable Payload.
func NewPayload(f PayloadFields) Payload {
	return Payload{f: f.clone()}
}

// Fields returns a deep copy of the payload fields.
func (p Payload) Fields() PayloadFields {
	return p.f.clone()
}

// MarshalJSON encodes p using the backend field names.
func (p Payload) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.f)
}

// UnmarshalJSON decodes p from its backend field names.
func (p *Payload) UnmarshalJSON(data []byte) error {
	var f PayloadFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	p.f = f
	return nil
}

// Name returns the listing name.
func (p Payload) Name() string { return p.f.Name }

// Capacity returns the passenger capacity.
func (p Payload) Capacity() int { return p.f.Capacity }

// CrewSize returns the number of crew placeholders.
func (p Payload) CrewSize() int { return len(p.f.Crews) }

// Available reports if the availability window is set.
func (p Payload) Available() bool { return p.f.Availability }

// ListingDetail is a persisted listing as reported by the owner API.
type ListingDetail struct {
	ID             string         `json:"_id"`
	Name           string         `json:"name"`
	PickupAt       string         `json:"pickupat"`
	Location       string         `json:"location"`
	Description    string         `json:"description"`
	Price          Pricing        `json:"price"`
	Availability   bool           `json:"availability"`
	Amenities      []string       `json:"amenities"`
	Capacity       int            `json:"capacity"`
	MnfYear        int            `json:"mnfyear"`
	Dimension      string         `json:"dimension"`
	Dimensions     *Dimensions    `json:"dimensions,omitempty"`
	Crews          []Crew         `json:"crews"`
	Images         []string       `json:"images"`
	YachtType      Category       `json:"YachtType"`
	UniqueFeatures string         `json:"uniqueFeatures"`
	From           string         `json:"availabilityFrom"`
	To             string         `json:"availabilityTo"`
	CrewCount      string         `json:"crewCount"`
	AddonServices  []AddonService `json:"addonServices"`
	PackageTypes   []string       `json:"packageTypes"`
	StartingPrice  string         `json:"startingPrice,omitempty"`
}

// Draft converts the l listing into a Draft, so it may be edited.
// Missing derived fields are reconstructed: the crew count is taken
// from the crews list and the dimension components are taken from the
// composed dimension string, if they were not reported explicitly.
func (l ListingDetail) Draft() Draft {
	d := Draft{
		ID:             l.ID,
		Name:           l.Name,
		Description:    l.Description,
		Category:       l.YachtType,
		CrewCount:      l.CrewCount,
		Dimension:      l.Dimension,
		Price:          l.Price,
		Addons:         append([]AddonService(nil), l.AddonServices...),
		Packages:       append([]string(nil), l.PackageTypes...),
		Images:         append([]string(nil), l.Images...),
		Amenities:      append([]string(nil), l.Amenities...),
		UniqueFeatures: l.UniqueFeatures,
	}
	if l.Capacity > 0 {
		d.Capacity = strconv.Itoa(l.Capacity)
	}
	if l.MnfYear > 0 {
		d.ManufactureYear = strconv.Itoa(l.MnfYear)
	}
	if d.CrewCount == "" && l.Crews != nil {
		d.CrewCount = strconv.Itoa(len(l.Crews))
	}
	switch {
	case l.Dimensions != nil:
		d.Dimensions = *l.Dimensions
	case l.Dimension != "":
		if parts := strings.Split(l.Dimension, "x"); len(parts) == 3 {
			d.Dimensions = Dimensions{parts[0], parts[1], parts[2]}
		}
	}
	if d.Dimension == "" && d.Dimensions != (Dimensions{}) {
		d.Dimension = d.Dimensions.Compose()
	}
	if loc, err := LookupLocation(l.PickupAt); err == nil {
		d.Location = loc
	} else if l.PickupAt != "" {
		d.Location = Location{Label: l.Location, Value: l.PickupAt}
	}
	if t, err := ParseTimeOfDay(l.From); err == nil {
		d.AvailabilityFrom = &t
	}
	if t, err := ParseTimeOfDay(l.To); err == nil {
		d.AvailabilityTo = &t
	}
	return d
}
