// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package listingrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/yacht-charter/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/momeni/yacht-charter/pkg/core/usecase/listinguc"
)

// Draft update operations of the PATCH /workflows/:wid request.
const (
	OpField        = "field"
	OpLocation     = "location"
	OpPrice        = "price"
	OpDimension    = "dimension"
	OpAddons       = "addons"
	OpAddonPrice   = "addon-price"
	OpPackages     = "packages"
	OpAvailability = "availability"
	OpAmenities    = "amenities"
)

type rawDraftUpdateReq struct {
	Op string `json:"op" binding:"required,oneof=field location price dimension addons addon-price packages availability amenities"`

	Field string   `json:"field"`
	Value *string  `json:"value"`
	Mode  string   `json:"mode" binding:"omitempty,oneof=sailing anchoring"`
	Band  string   `json:"band" binding:"omitempty,oneof=peakTime nonPeakTime"`
	Axis  string   `json:"axis" binding:"omitempty,oneof=length width height"`
	Name  string   `json:"name"`
	Rate  *float64 `json:"rate" binding:"omitempty,gte=0"`
	Names []string `json:"names"`
	From  string   `json:"from"`
	To    string   `json:"to"`
}

// DserUpdateDraftReq deserializes a draft update request as a function
// which applies it on the form of a workflow. Each op requires its own
// subset of the request fields.
func (rs *resource) DserUpdateDraftReq(
	c *gin.Context,
) (func(f *listinguc.Form) error, bool) {
	req := &rawDraftUpdateReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil, false
	}
	var errs map[string][]string
	defer func() {
		if errs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"fields": errs})
		}
	}()
	var update func(f *listinguc.Form) error
	switch req.Op {
	case OpField:
		if serdser.Assert(&errs, req.Field != "", "field", "The op=field requires field.") &&
			serdser.Assert(&errs, req.Value != nil, "value", "The op=field requires value.") {
			field, value := listinguc.Field(req.Field), *req.Value
			update = func(f *listinguc.Form) error {
				return f.SetField(field, value)
			}
		}
	case OpLocation:
		if serdser.Assert(&errs, req.Value != nil, "value", "The op=location requires value.") {
			value := *req.Value
			update = func(f *listinguc.Form) error {
				return f.SetLocation(value)
			}
		}
	case OpPrice:
		if serdser.Assert(&errs, req.Mode != "", "mode", "The op=price requires mode.") &&
			serdser.Assert(&errs, req.Band != "", "band", "The op=price requires band.") &&
			serdser.Assert(&errs, req.Rate != nil, "rate", "The op=price requires rate.") {
			mode, band, rate := model.Mode(req.Mode), model.Band(req.Band), *req.Rate
			update = func(f *listinguc.Form) error {
				return f.SetPrice(mode, band, rate)
			}
		}
	case OpDimension:
		if serdser.Assert(&errs, req.Axis != "", "axis", "The op=dimension requires axis.") &&
			serdser.Assert(&errs, req.Value != nil, "value", "The op=dimension requires value.") {
			axis, value := model.Axis(req.Axis), *req.Value
			update = func(f *listinguc.Form) error {
				return f.SetDimension(axis, value)
			}
		}
	case OpAddons:
		names := req.Names
		update = func(f *listinguc.Form) error {
			return f.SelectAddons(names...)
		}
	case OpAddonPrice:
		if serdser.Assert(&errs, req.Name != "", "name", "The op=addon-price requires name.") &&
			serdser.Assert(&errs, req.Rate != nil, "rate", "The op=addon-price requires rate.") {
			name, rate := req.Name, *req.Rate
			update = func(f *listinguc.Form) error {
				return f.SetAddonPrice(name, rate)
			}
		}
	case OpPackages:
		ids := req.Names
		update = func(f *listinguc.Form) error {
			return f.SelectPackages(ids...)
		}
	case OpAvailability:
		from, ok1 := parseTimeOfDay(&errs, "from", req.From)
		to, ok2 := parseTimeOfDay(&errs, "to", req.To)
		if ok1 && ok2 {
			update = func(f *listinguc.Form) error {
				f.SetAvailability(from, to)
				return nil
			}
		}
	case OpAmenities:
		amenities := req.Names
		update = func(f *listinguc.Form) error {
			f.SetAmenities(amenities...)
			return nil
		}
	}
	if errs == nil {
		return update, true
	}
	return nil, false
}

// parseTimeOfDay parses s as a wall clock time. An empty s unsets the
// time and is reported as nil.
func parseTimeOfDay(
	errs *map[string][]string, name, s string,
) (*model.TimeOfDay, bool) {
	if s == "" {
		return nil, true
	}
	t, err := model.ParseTimeOfDay(s)
	if !serdser.Assert(errs, err == nil, name, "Expected a time like 09:30.") {
		return nil, false
	}
	return &t, true
}

type deleteReq struct {
	ID      string `uri:"lid" binding:"required"`
	Confirm bool   `form:"confirm"`
}

// DserDeleteReq deserializes a listing deletion request. The deletion
// is only confirmed by an explicit confirm=true query param.
func (rs *resource) DserDeleteReq(c *gin.Context) (*deleteReq, bool) {
	req := &deleteReq{}
	if ok := serdser.BindURI(c, req); !ok {
		return nil, false
	}
	if ok := serdser.Bind(c, req, binding.Query); !ok {
		return nil, false
	}
	return req, true
}

// CategoryResp is one selectable category.
type CategoryResp struct {
	Value model.Category `json:"value"`
	Label string         `json:"label"`
}

// CatalogResp lists the fixed choices of the listing form.
type CatalogResp struct {
	Categories []CategoryResp        `json:"categories"`
	Locations  []model.LocationGroup `json:"locations"`
	Addons     []string              `json:"addonServices"`
	Packages   []model.Package       `json:"packageTypes"`
}

// SerCatalog builds the catalog response.
func SerCatalog() CatalogResp {
	cats := model.Categories()
	resp := CatalogResp{
		Categories: make([]CategoryResp, 0, len(cats)),
		Locations:  model.LocationGroups(),
		Addons:     model.Addons(),
		Packages:   model.Packages(),
	}
	for _, cat := range cats {
		resp.Categories = append(resp.Categories, CategoryResp{
			Value: cat, Label: cat.Label(),
		})
	}
	return resp
}
