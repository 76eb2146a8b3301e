// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package sessionrs realizes the session resource, allowing the login,
// logout, and signup REST APIs to be accepted and delegated to the
// session use case. It also provides the RequireOwner middleware which
// guards the owner routes by the Session Gate.
package sessionrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/yacht-charter/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/momeni/yacht-charter/pkg/core/usecase/sessionuc"
)

// UserKey is the gin context key of the authenticated *model.User.
const UserKey = "user"

type resource struct {
	session *sessionuc.UseCase
}

// Register instantiates a resource adapting the session use case
// instance with the relevant REST APIs including:
//  1. GET request to /session for evaluating the current session,
//  2. POST request to /session/login for signing in,
//  3. POST request to /session/logout for signing out,
//  4. POST request to /signup for registering a user,
//  5. POST request to /signup/verify for verifying the one-time
//     password of a pending signup, and
//  6. POST request to /signup/resend for sending a fresh one-time
//     password.
func Register(r *gin.RouterGroup, session *sessionuc.UseCase) {
	rs := &resource{session: session}
	r.GET("session", rs.Status)
	r.POST("session/login", rs.Login)
	r.POST("session/logout", rs.Logout)
	r.POST("signup", rs.Signup)
	r.POST("signup/verify", rs.VerifyOTP)
	r.POST("signup/resend", rs.ResendOTP)
}

// RequireOwner aborts the requests which are not authenticated by the
// gate with a 401 response carrying the login redirection. The user of
// an authenticated request is kept under UserKey.
func RequireOwner(g *sessionuc.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := g.Require(c)
		if err != nil {
			serdser.SerErr(c, err)
			c.Abort()
			return
		}
		c.Set(UserKey, u)
		c.Next()
	}
}

// User returns the authenticated user of c, if any.
func User(c *gin.Context) *model.User {
	u, _ := c.Get(UserKey)
	user, _ := u.(*model.User)
	return user
}

func (rs *resource) Status(c *gin.Context) {
	s, err := rs.session.Status(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (rs *resource) Login(c *gin.Context) {
	req, ok := rs.DserLoginReq(c)
	if !ok {
		return
	}
	s, err := rs.session.Login(c, *req)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (rs *resource) Logout(c *gin.Context) {
	s, err := rs.session.Logout(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (rs *resource) Signup(c *gin.Context) {
	req, ok := rs.DserSignupReq(c)
	if !ok {
		return
	}
	s, err := rs.session.Signup(c, *req)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (rs *resource) VerifyOTP(c *gin.Context) {
	req, ok := rs.DserVerifyReq(c)
	if !ok {
		return
	}
	s, err := rs.session.VerifyOTP(c, req.Signup, req.OTP)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (rs *resource) ResendOTP(c *gin.Context) {
	req, ok := rs.DserResendReq(c)
	if !ok {
		return
	}
	if err := rs.session.ResendOTP(c, req.Email); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
