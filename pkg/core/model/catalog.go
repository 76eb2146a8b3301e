// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
)

// Category specifies the charter category enum of a yacht listing.
// It is kept as a string because the backend stores and reports the
// category by its machine value (e.g., "ultraLuxury").
type Category string

// Valid values for the Category enum.
const (
	CategoryInvalid Category = "" // zero value is invalid

	CategoryEconomy     Category = "economy"
	CategoryPremium     Category = "premium"
	CategoryLuxury      Category = "luxury"
	CategoryUltraLuxury Category = "ultraLuxury"
)

// ErrUnknownCategory indicates that a given string may not be parsed
// as a known listing category.
var ErrUnknownCategory = errors.New("unknown category")

// CategoryError indicates an invalid category value which was found
// while validating an already constructed Category instance.
type CategoryError string

// Error implements the error interface.
func (e CategoryError) Error() string {
	return fmt.Sprintf("invalid category: %q", string(e))
}

// Validate returns nil if the Category value is one of the known
// categories. Otherwise, a CategoryError will be returned.
func (c Category) Validate() error {
	switch c {
	case CategoryEconomy, CategoryPremium, CategoryLuxury,
		CategoryUltraLuxury:
		return nil
	default:
		return CategoryError(c)
	}
}

// Label returns the human readable label of the category as it is
// presented to owners while choosing a category.
// Invalid categories cause a panic.
func (c Category) Label() string {
	switch c {
	case CategoryEconomy:
		return "Economy (under 20k)"
	case CategoryPremium:
		return "Premium (under 30k)"
	case CategoryLuxury:
		return "Luxury (Under 40k)"
	case CategoryUltraLuxury:
		return "Ultra luxury (above 40k)"
	default:
		panic(CategoryError(c))
	}
}

// ParseCategory parses the given machine value and returns a Category.
// For unknown strings, CategoryInvalid and ErrUnknownCategory will be
// returned.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if err := c.Validate(); err != nil {
		return CategoryInvalid, ErrUnknownCategory
	}
	return c, nil
}

// Categories lists all valid categories in their presentation order.
func Categories() []Category {
	return []Category{
		CategoryEconomy, CategoryPremium, CategoryLuxury,
		CategoryUltraLuxury,
	}
}

// Location is a named pickup point. Label is shown to humans while
// Value is the machine value which is sent to the backend as pickupat.
type Location struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// LocationGroup groups the pickup points of one area.
type LocationGroup struct {
	Label   string     `json:"label"`
	Options []Location `json:"options"`
}

var locationGroups = []LocationGroup{
	{Label: "Old Goa", Options: []Location{{"Old Goa", "old_goa"}}},
	{Label: "Panjim", Options: []Location{{"Panjim", "panjim"}}},
	{Label: "Britona", Options: []Location{{"Britona", "britona"}}},
}

// ErrUnknownLocation indicates that a pickup location value does not
// belong to the fixed location catalog.
var ErrUnknownLocation = errors.New("unknown pickup location")

// LocationGroups returns a copy of the grouped pickup location catalog.
func LocationGroups() []LocationGroup {
	groups := make([]LocationGroup, 0, len(locationGroups))
	for _, g := range locationGroups {
		opts := append([]Location(nil), g.Options...)
		groups = append(groups, LocationGroup{Label: g.Label, Options: opts})
	}
	return groups
}

// LookupLocation finds the pickup location with the given machine
// value. ErrUnknownLocation is returned if there is no such location.
func LookupLocation(value string) (Location, error) {
	for _, g := range locationGroups {
		for _, l := range g.Options {
			if l.Value == value {
				return l, nil
			}
		}
	}
	return Location{}, ErrUnknownLocation
}

// These constants name the add-on services which may be offered with
// a listing. Names double as their identifiers.
const (
	AddonPhotographer      = "Photographer"
	AddonPhotographerDrone = "Photographer + Drone shot"
	AddonBirthdayCake      = "Birthday Cake"
	AddonAnniversaryCake   = "Anniversary Cake"
	AddonDancers           = "Dancers"
	AddonDecoration        = "Decoration"
)

var addons = []string{
	AddonPhotographer, AddonPhotographerDrone, AddonBirthdayCake,
	AddonAnniversaryCake, AddonDancers, AddonDecoration,
}

// ErrUnknownAddon indicates that an add-on service name does not
// belong to the add-on catalog.
var ErrUnknownAddon = errors.New("unknown add-on service")

// Addons returns the add-on service catalog.
func Addons() []string {
	return append([]string(nil), addons...)
}

// IsAddon reports if name is a known add-on service.
func IsAddon(name string) bool {
	for _, a := range addons {
		if a == name {
			return true
		}
	}
	return false
}

// Package is a predefined combination of sailing and anchorage
// durations which may be offered as a single selectable bundle.
type Package struct {
	ID    string `json:"value"`
	Label string `json:"label"`
}

var packages = []Package{
	{"1_hour_sailing_1_hour_anchorage", "1 hour sailing + 1 hour anchorage"},
	{"1.5_hours_sailing_0.5_hour_anchorage", "1.5 hours sailing + 0.5 hour anchorage"},
	{"2_hours_sailing_0_hour_anchorage", "2 hours sailing + 0 hour anchorage"},
	{"2_hours_sailing_1_hour_anchorage", "2 hours sailing + 1 hour anchorage"},
	{"1.5_hours_sailing_1.5_hours_anchorage", "1.5 hours sailing + 1.5 hours anchorage"},
	{"2.5_hours_sailing_0.5_hour_anchorage", "2.5 hours sailing + 0.5 hour anchorage"},
	{"2_hours_sailing_2_hours_anchorage", "2 hours sailing + 2 hours anchorage"},
	{"3_hours_sailing_1_hour_anchorage", "3 hours sailing + 1 hour anchorage"},
	{"3.5_hours_sailing_0.5_hour_anchorage", "3.5 hours sailing + 0.5 hour anchorage"},
}

// ErrUnknownPackage indicates that a package identifier does not
// belong to the package catalog.
var ErrUnknownPackage = errors.New("unknown package type")

// Packages returns the package catalog.
func Packages() []Package {
	return append([]Package(nil), packages...)
}

// IsPackage reports if id identifies a known package.
func IsPackage(id string) bool {
	for _, p := range packages {
		if p.ID == id {
			return true
		}
	}
	return false
}
