// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package listinguc

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/momeni/yacht-charter/pkg/core/cerr"
	"github.com/momeni/yacht-charter/pkg/core/model"
)

// Field names a draft field. The names double as the validation error
// keys, so they follow the backend field names.
type Field string

// Draft fields which may be set by SetField or reported by Validate.
const (
	FieldName           Field = "name"
	FieldDescription    Field = "description"
	FieldCategory       Field = "YachtType"
	FieldCapacity       Field = "capacity"
	FieldYear           Field = "mnfyear"
	FieldCrewCount      Field = "crewCount"
	FieldUniqueFeatures Field = "uniqueFeatures"

	// These fields are reported by Validate, but they are set by their
	// dedicated mutation methods instead of SetField.
	FieldLocation Field = "location"
	FieldPrice    Field = "price"
)

// ErrUnknownField indicates that SetField was asked to set a field
// which is not a scalar draft field.
var ErrUnknownField = errors.New("unknown scalar field")

// ErrIndexOutOfRange indicates that a media index does not exist.
var ErrIndexOutOfRange = errors.New("media index out of range")

// ErrAddonNotSelected indicates that a price was given for an add-on
// service which is not selected.
var ErrAddonNotSelected = errors.New("add-on service is not selected")

// Form holds a draft listing and its last field errors. Every mutation
// replaces the draft with a copy which has exactly one field group
// changed, leaving the unrelated fields intact. Derived fields (the
// composed dimension and the add-on prices) are recomputed in the same
// call, so they are never left stale.
//
// A Form is not safe for concurrent use. The Workflow type serializes
// accesses to its Form.
type Form struct {
	draft  model.Draft
	errors cerr.FieldErrors
}

// NewForm returns a Form with an empty draft.
func NewForm() *Form {
	return &Form{}
}

// NewFormFrom returns a Form which is pre-populated with a copy of d.
// It is used in the edit mode.
func NewFormFrom(d model.Draft) *Form {
	d = d.Clone()
	if d.Dimension == "" && d.Dimensions != (model.Dimensions{}) {
		d.Dimension = d.Dimensions.Compose()
	}
	return &Form{draft: d}
}

// Draft returns a deep copy of the current draft.
func (f *Form) Draft() model.Draft {
	return f.draft.Clone()
}

// Errors returns a copy of the field errors of the last validation.
func (f *Form) Errors() cerr.FieldErrors {
	if len(f.errors) == 0 {
		return nil
	}
	c := make(cerr.FieldErrors, len(f.errors))
	for k, v := range f.errors {
		c[k] = v
	}
	return c
}

// SetField sets one scalar field. The category field only accepts the
// known category values (or an empty string in order to unset it).
func (f *Form) SetField(field Field, value string) error {
	d := f.draft
	switch field {
	case FieldName:
		d.Name = value
	case FieldDescription:
		d.Description = value
	case FieldCapacity:
		d.Capacity = value
	case FieldYear:
		d.ManufactureYear = value
	case FieldCrewCount:
		d.CrewCount = value
	case FieldUniqueFeatures:
		d.UniqueFeatures = value
	case FieldCategory:
		if value == "" {
			d.Category = model.CategoryInvalid
			break
		}
		c, err := model.ParseCategory(value)
		if err != nil {
			return cerr.BadRequest(fmt.Errorf("category %q: %w", value, err))
		}
		d.Category = c
	default:
		return cerr.BadRequest(fmt.Errorf("%q: %w", field, ErrUnknownField))
	}
	f.draft = d
	return nil
}

// SetLocation chooses the pickup location by its machine value,
// storing both of its label and value.
func (f *Form) SetLocation(value string) error {
	loc, err := model.LookupLocation(value)
	if err != nil {
		return cerr.BadRequest(fmt.Errorf("location %q: %w", value, err))
	}
	d := f.draft
	d.Location = loc
	f.draft = d
	return nil
}

// SetPrice sets one of the four rates.
func (f *Form) SetPrice(mode model.Mode, band model.Band, v float64) error {
	p, err := f.draft.Price.With(mode, band, v)
	if err != nil {
		return cerr.BadRequest(fmt.Errorf("price %s/%s: %w", mode, band, err))
	}
	d := f.draft
	d.Price = p
	f.draft = d
	return nil
}

// SetDimension sets one dimension component and recomputes the
// composed dimension string.
func (f *Form) SetDimension(axis model.Axis, v string) error {
	dims, err := f.draft.Dimensions.With(axis, v)
	if err != nil {
		return cerr.BadRequest(fmt.Errorf("dimension %q: %w", axis, err))
	}
	d := f.draft
	d.Dimensions = dims
	d.Dimension = dims.Compose()
	f.draft = d
	return nil
}

// AddMedia appends the given hosted image URLs, keeping prior order.
func (f *Form) AddMedia(urls ...string) {
	if len(urls) == 0 {
		return
	}
	d := f.draft
	images := make([]string, 0, len(d.Images)+len(urls))
	images = append(images, d.Images...)
	d.Images = append(images, urls...)
	f.draft = d
}

// RemoveMedia drops the image reference at index i. The hosted asset
// is kept intact since only the client-side reference is removed.
func (f *Form) RemoveMedia(i int) error {
	d := f.draft
	if i < 0 || i >= len(d.Images) {
		return cerr.BadRequest(fmt.Errorf("index %d: %w", i, ErrIndexOutOfRange))
	}
	images := make([]string, 0, len(d.Images)-1)
	images = append(images, d.Images[:i]...)
	d.Images = append(images, d.Images[i+1:]...)
	f.draft = d
	return nil
}

// SelectAddons replaces the selected add-on services. Newly selected
// services take a zero hourly price while the services which were
// already selected keep their prices. Duplicate names are ignored.
func (f *Form) SelectAddons(names ...string) error {
	prev := make(map[string]float64, len(f.draft.Addons))
	for _, a := range f.draft.Addons {
		prev[a.Service] = a.PricePerHour
	}
	seen := make(map[string]bool, len(names))
	addons := make([]model.AddonService, 0, len(names))
	for _, n := range names {
		if !model.IsAddon(n) {
			return cerr.BadRequest(fmt.Errorf("%q: %w", n, model.ErrUnknownAddon))
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		addons = append(addons, model.AddonService{
			Service: n, PricePerHour: prev[n],
		})
	}
	d := f.draft
	d.Addons = addons
	f.draft = d
	return nil
}

// SetAddonPrice sets the hourly price of one selected add-on service.
// Other add-on services keep their prices.
func (f *Form) SetAddonPrice(name string, price float64) error {
	if price < 0 {
		return cerr.BadRequest(fmt.Errorf("%q: %w", name, model.ErrNegativeRate))
	}
	addons := make([]model.AddonService, len(f.draft.Addons))
	found := false
	for i, a := range f.draft.Addons {
		if a.Service == name {
			a.PricePerHour = price
			found = true
		}
		addons[i] = a
	}
	if !found {
		return cerr.BadRequest(fmt.Errorf("%q: %w", name, ErrAddonNotSelected))
	}
	d := f.draft
	d.Addons = addons
	f.draft = d
	return nil
}

// SelectPackages replaces the selected package identifiers.
func (f *Form) SelectPackages(ids ...string) error {
	seen := make(map[string]bool, len(ids))
	pkgs := make([]string, 0, len(ids))
	for _, id := range ids {
		if !model.IsPackage(id) {
			return cerr.BadRequest(fmt.Errorf("%q: %w", id, model.ErrUnknownPackage))
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		pkgs = append(pkgs, id)
	}
	d := f.draft
	d.Packages = pkgs
	f.draft = d
	return nil
}

// SetAvailability sets the availability window. A nil end unsets it.
func (f *Form) SetAvailability(from, to *model.TimeOfDay) {
	d := f.draft
	d.AvailabilityFrom, d.AvailabilityTo = nil, nil
	if from != nil {
		t := *from
		d.AvailabilityFrom = &t
	}
	if to != nil {
		t := *to
		d.AvailabilityTo = &t
	}
	f.draft = d
}

// SetAmenities sets the explicit amenities list. Blank entries are
// dropped and the remaining ones are trimmed.
func (f *Form) SetAmenities(amenities ...string) {
	list := make([]string, 0, len(amenities))
	for _, a := range amenities {
		if a = strings.TrimSpace(a); a != "" {
			list = append(list, a)
		}
	}
	d := f.draft
	d.Amenities = list
	f.draft = d
}

// validate validates the draft, recording and returning its errors.
func (f *Form) validate(now time.Time) cerr.FieldErrors {
	f.errors = Validate(f.draft, now)
	return f.Errors()
}
