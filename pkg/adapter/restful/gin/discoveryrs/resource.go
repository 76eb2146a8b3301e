// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package discoveryrs realizes the public discovery resource, allowing
// the yachts to be browsed and booked.
package discoveryrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/yacht-charter/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/momeni/yacht-charter/pkg/core/usecase/discoveryuc"
)

type resource struct {
	discovery *discoveryuc.UseCase
}

// Register instantiates a resource adapting the discovery use case
// instance with the relevant REST APIs including:
//  1. GET request to /discover/yachts for all yachts,
//  2. GET request to /discover/top for the top yachts,
//  3. POST request to /discover/ideal for the yachts matching a trip,
//  4. POST request to /discover/bookings for booking a yacht.
func Register(r *gin.RouterGroup, discovery *discoveryuc.UseCase) {
	rs := &resource{discovery: discovery}
	r.GET("discover/yachts", rs.ListAll)
	r.GET("discover/top", rs.Top)
	r.POST("discover/ideal", rs.Ideal)
	r.POST("discover/bookings", rs.Book)
}

func (rs *resource) ListAll(c *gin.Context) {
	ll, err := rs.discovery.ListAll(c)
	serYachts(c, ll, err)
}

func (rs *resource) Top(c *gin.Context) {
	ll, err := rs.discovery.Top(c)
	serYachts(c, ll, err)
}

func (rs *resource) Ideal(c *gin.Context) {
	q := &model.YachtQuery{}
	if ok := serdser.Bind(c, q, binding.JSON); !ok {
		return
	}
	ll, err := rs.discovery.Ideal(c, *q)
	serYachts(c, ll, err)
}

func (rs *resource) Book(c *gin.Context) {
	req := &model.BookingRequest{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return
	}
	rcpt, err := rs.discovery.Book(c, *req)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, rcpt)
}

func serYachts(c *gin.Context, ll []model.ListingDetail, err error) {
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	if ll == nil {
		ll = []model.ListingDetail{}
	}
	c.JSON(http.StatusOK, gin.H{"yachts": ll})
}
