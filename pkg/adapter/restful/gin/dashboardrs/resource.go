// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package dashboardrs realizes the owner dashboard resource.
package dashboardrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/yacht-charter/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/yacht-charter/pkg/core/usecase/dashboarduc"
)

type resource struct {
	dashboard *dashboarduc.UseCase
}

// Register instantiates a resource adapting the dashboard use case
// instance with the relevant REST APIs including:
//  1. GET request to /dashboard for all dashboard sections, and
//  2. GET request to /rides/:rid for one previous ride.
func Register(r *gin.RouterGroup, dashboard *dashboarduc.UseCase) {
	rs := &resource{dashboard: dashboard}
	r.GET("dashboard", rs.Dashboard)
	r.GET("rides/:rid", rs.Ride)
}

// DashboardResp reports the loaded sections along with the messages of
// the sections which could not be loaded.
type DashboardResp struct {
	*dashboarduc.Dashboard
	Errors map[dashboarduc.Section]string `json:"errors,omitempty"`
}

func (rs *resource) Dashboard(c *gin.Context) {
	d, err := rs.dashboard.Load(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, DashboardResp{
		Dashboard: d, Errors: d.ErrorMessages(),
	})
}

func (rs *resource) Ride(c *gin.Context) {
	r, err := rs.dashboard.Ride(c, c.Param("rid"))
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}
