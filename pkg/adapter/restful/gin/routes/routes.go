// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// registration of them on a gin-gonic engine. Each use case package is
// named like listinguc and is adapted by a resource package which is
// named like listingrs.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/momeni/yacht-charter/pkg/adapter/config"
	"github.com/momeni/yacht-charter/pkg/adapter/restful/gin/dashboardrs"
	"github.com/momeni/yacht-charter/pkg/adapter/restful/gin/discoveryrs"
	"github.com/momeni/yacht-charter/pkg/adapter/restful/gin/listingrs"
	"github.com/momeni/yacht-charter/pkg/adapter/restful/gin/mediars"
	"github.com/momeni/yacht-charter/pkg/adapter/restful/gin/sessionrs"
)

// Prefix is the path prefix of all shell APIs.
const Prefix = "/api/ycshell/v1"

// Register registers the resources of the uc use cases on the e engine.
// The session and discovery resources are public while the owner
// resources are guarded by the Session Gate, so an unauthenticated
// request is answered with a redirection to the login entry point.
func Register(e *gin.Engine, uc *config.UseCases) {
	r := e.Group(Prefix)
	sessionrs.Register(r, uc.Session)
	discoveryrs.Register(r, uc.Discovery)

	owner := r.Group("", sessionrs.RequireOwner(uc.Gate))
	listingrs.Register(owner, uc.Listings)
	mediars.Register(owner, uc.Listings, uc.Media)
	dashboardrs.Register(owner, uc.Dashboard)
}
