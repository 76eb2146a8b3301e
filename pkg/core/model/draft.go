// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the yacht charter
// shell, containing the listing drafts and payloads, the fixed catalogs,
// and the user, booking, and media models. This layer may not depend
// on outer layers, while all other layers may depend on it.
package model

import (
	"errors"
	"fmt"
	"time"
)

// Draft is the in-progress yacht listing which is being authored by an
// owner. It is created empty when a listing workflow begins (or it is
// pre-populated from a fetched ListingDetail in the edit mode) and is
// mutated one field group at a time by the listing use case.
//
// Numeric inputs which may be missing or malformed while the owner is
// still typing (capacity, manufacture year, crew count, and dimensions)
// are kept as raw strings. They are parsed by the validation and the
// staging steps, so their errors may be reported per field.
type Draft struct {
	// ID is the listing identifier. It is empty until the listing
	// is persisted and is only known in the edit mode.
	ID string `json:"id,omitempty"`

	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"YachtType"`

	Capacity        string `json:"capacity"`
	ManufactureYear string `json:"mnfyear"`
	CrewCount       string `json:"crewCount"`

	Dimensions Dimensions `json:"dimensions"`
	Dimension  string     `json:"dimension"` // composed "LxWxH"

	Location Location `json:"location"` // zero value if not chosen

	AvailabilityFrom *TimeOfDay `json:"availabilityFrom"`
	AvailabilityTo   *TimeOfDay `json:"availabilityTo"`

	Price    Pricing        `json:"price"`
	Addons   []AddonService `json:"addonServices"`
	Packages []string       `json:"packageTypes"`

	Images         []string `json:"images"`
	Amenities      []string `json:"amenities"`
	UniqueFeatures string   `json:"uniqueFeatures"`
}

// Clone returns a deep copy of the d draft, so the returned draft may
// be handed to other layers without sharing its slices or pointers.
func (d Draft) Clone() Draft {
	c := d
	c.Addons = append([]AddonService(nil), d.Addons...)
	c.Packages = append([]string(nil), d.Packages...)
	c.Images = append([]string(nil), d.Images...)
	c.Amenities = append([]string(nil), d.Amenities...)
	if d.AvailabilityFrom != nil {
		t := *d.AvailabilityFrom
		c.AvailabilityFrom = &t
	}
	if d.AvailabilityTo != nil {
		t := *d.AvailabilityTo
		c.AvailabilityTo = &t
	}
	return c
}

// Dimensions keeps the three raw dimension components of a yacht.
type Dimensions struct {
	Length string `json:"length"`
	Width  string `json:"width"`
	Height string `json:"height"`
}

// Compose returns the composed "LxWxH" dimension string.
func (d Dimensions) Compose() string {
	return d.Length + "x" + d.Width + "x" + d.Height
}

// Axis names one of the three dimension components.
type Axis string

// Valid values for the Axis enum.
const (
	AxisLength Axis = "length"
	AxisWidth  Axis = "width"
	AxisHeight Axis = "height"
)

// ErrUnknownAxis indicates that a dimension component name is unknown.
var ErrUnknownAxis = errors.New("unknown dimension axis")

// With returns a copy of d having its axis component replaced by v.
func (d Dimensions) With(axis Axis, v string) (Dimensions, error) {
	switch axis {
	case AxisLength:
		d.Length = v
	case AxisWidth:
		d.Width = v
	case AxisHeight:
		d.Height = v
	default:
		return d, ErrUnknownAxis
	}
	return d, nil
}

// Pricing holds the four hourly rates of a listing, i.e., two activity
// modes (sailing and anchoring) times two time bands (peak and
// non-peak). The anchorage price is always modeled as a pair.
type Pricing struct {
	Sailing   Rates `json:"sailing"`
	Anchoring Rates `json:"anchoring"`
}

// Rates holds the peak and non-peak rates of one activity mode.
type Rates struct {
	PeakTime    float64 `json:"peakTime"`
	NonPeakTime float64 `json:"nonPeakTime"`
}

// Mode is an activity mode which may be priced.
type Mode string

// Band is a time band which may be priced.
type Band string

// Valid values for the Mode and Band enums.
const (
	ModeSailing   Mode = "sailing"
	ModeAnchoring Mode = "anchoring"

	BandPeak    Band = "peakTime"
	BandNonPeak Band = "nonPeakTime"
)

// ErrUnknownRate indicates that a mode or band name is unknown.
var ErrUnknownRate = errors.New("unknown pricing mode or band")

// ErrNegativeRate indicates that a rate is negative.
var ErrNegativeRate = errors.New("rate may not be negative")

// With returns a copy of p having its (mode, band) rate replaced by v.
// Other rates are kept intact.
func (p Pricing) With(mode Mode, band Band, v float64) (Pricing, error) {
	if v < 0 {
		return p, ErrNegativeRate
	}
	var r *Rates
	switch mode {
	case ModeSailing:
		r = &p.Sailing
	case ModeAnchoring:
		r = &p.Anchoring
	default:
		return p, ErrUnknownRate
	}
	switch band {
	case BandPeak:
		r.PeakTime = v
	case BandNonPeak:
		r.NonPeakTime = v
	default:
		return p, ErrUnknownRate
	}
	return p, nil
}

// AddonService is a selected add-on service with its hourly price.
type AddonService struct {
	Service      string  `json:"service"`
	PricePerHour float64 `json:"pricePerHour"`
}

// Crew is a crew member record. Listings are submitted with empty
// placeholders which are filled by the backend later.
type Crew struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// TimeOfDay is a wall clock time which is independent of any date.
// It is (de)serialized as "15:04".
type TimeOfDay struct {
	Hour   int
	Minute int
}

const timeOfDayLayout = "15:04"

// ParseTimeOfDay parses s which may be either in "15:04" form or
// in the RFC 3339 form (only its clock part is kept in that case).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		var err2 error
		t, err2 = time.Parse(time.RFC3339, s)
		if err2 != nil {
			return TimeOfDay{}, fmt.Errorf("parsing time of day: %w", err)
		}
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// String returns the "15:04" representation of t.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (t *TimeOfDay) UnmarshalText(data []byte) error {
	tt, err := ParseTimeOfDay(string(data))
	if err != nil {
		return err
	}
	*t = tt
	return nil
}
