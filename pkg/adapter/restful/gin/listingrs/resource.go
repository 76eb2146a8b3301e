// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package listingrs realizes the listing resource, allowing the owner
// to author, review, and submit yacht listings through the listing
// workflows, and to browse or delete the persisted listings.
package listingrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/yacht-charter/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/momeni/yacht-charter/pkg/core/usecase/listinguc"
)

type resource struct {
	listings *listinguc.UseCase
}

// Register instantiates a resource adapting the listing use case
// instance with the relevant REST APIs including:
//  1. GET request to /catalog for the categories, pickup locations,
//     add-on services, and packages which a draft may refer to,
//  2. POST request to /workflows for starting a create workflow,
//  3. POST request to /yachts/:lid/edit for starting an edit workflow,
//  4. GET request to /workflows/:wid for its current snapshot,
//  5. PATCH request to /workflows/:wid for changing one field group
//     of its draft (the op body field selects the group),
//  6. POST requests to /workflows/:wid/submit, back, and confirm for
//     moving between the form, review, and done steps,
//  7. DELETE request to /workflows/:wid for discarding it,
//  8. GET requests to /yachts and /yachts/:lid for the listings of the
//     owner, and
//  9. DELETE request to /yachts/:lid?confirm=true for deleting one.
func Register(r *gin.RouterGroup, listings *listinguc.UseCase) {
	rs := &resource{listings: listings}
	r.GET("catalog", rs.Catalog)
	r.POST("workflows", rs.Begin)
	r.GET("workflows/:wid", rs.Get)
	r.PATCH("workflows/:wid", rs.UpdateDraft)
	r.POST("workflows/:wid/submit", rs.Submit)
	r.POST("workflows/:wid/back", rs.Back)
	r.POST("workflows/:wid/confirm", rs.Confirm)
	r.DELETE("workflows/:wid", rs.Discard)
	r.GET("yachts", rs.Mine)
	r.GET("yachts/:lid", rs.Fetch)
	r.POST("yachts/:lid/edit", rs.BeginEdit)
	r.DELETE("yachts/:lid", rs.Delete)
}

// Catalog lists the fixed choices of the listing form.
func (rs *resource) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, SerCatalog())
}

func (rs *resource) Begin(c *gin.Context) {
	wf, err := rs.listings.Begin(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, wf.Snapshot())
}

func (rs *resource) BeginEdit(c *gin.Context) {
	wf, err := rs.listings.BeginEdit(c, c.Param("lid"))
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, wf.Snapshot())
}

func (rs *resource) Get(c *gin.Context) {
	wf, ok := rs.workflow(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, wf.Snapshot())
}

func (rs *resource) UpdateDraft(c *gin.Context) {
	wf, ok := rs.workflow(c)
	if !ok {
		return
	}
	update, ok := rs.DserUpdateDraftReq(c)
	if !ok {
		return
	}
	if err := wf.Update(update); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, wf.Snapshot())
}

func (rs *resource) Submit(c *gin.Context) {
	wf, ok := rs.workflow(c)
	if !ok {
		return
	}
	r, err := rs.listings.Submit(wf)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (rs *resource) Back(c *gin.Context) {
	wf, ok := rs.workflow(c)
	if !ok {
		return
	}
	if err := wf.Back(); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, wf.Snapshot())
}

// ConfirmResp reports the persisted listing id along with the final
// workflow snapshot since the workflow is not reachable afterwards.
type ConfirmResp struct {
	ID       string             `json:"id"`
	Workflow listinguc.Snapshot `json:"workflow"`
}

func (rs *resource) Confirm(c *gin.Context) {
	wf, ok := rs.workflow(c)
	if !ok {
		return
	}
	id, err := rs.listings.Confirm(c, wf)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, ConfirmResp{ID: id, Workflow: wf.Snapshot()})
}

func (rs *resource) Discard(c *gin.Context) {
	id, ok := serdser.UUID(c, "wid")
	if !ok {
		return
	}
	if err := rs.listings.Discard(id); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rs *resource) Mine(c *gin.Context) {
	ll, err := rs.listings.Mine(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	if ll == nil {
		ll = []model.ListingDetail{}
	}
	c.JSON(http.StatusOK, gin.H{"yachts": ll})
}

func (rs *resource) Fetch(c *gin.Context) {
	l, err := rs.listings.Fetch(c, c.Param("lid"))
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (rs *resource) Delete(c *gin.Context) {
	req, ok := rs.DserDeleteReq(c)
	if !ok {
		return
	}
	if err := rs.listings.Delete(c, req.ID, req.Confirm); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rs *resource) workflow(c *gin.Context) (*listinguc.Workflow, bool) {
	id, ok := serdser.UUID(c, "wid")
	if !ok {
		return nil, false
	}
	wf, err := rs.listings.Workflow(id)
	if err != nil {
		serdser.SerErr(c, err)
		return nil, false
	}
	return wf, true
}
