// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package serdser contains the request deserialization and the error
// serialization helpers which are shared by all resources.
package serdser

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/momeni/yacht-charter/pkg/core/cerr"
	"github.com/momeni/yacht-charter/pkg/core/log"
)

// Bind binds the request into req using the b binding and validates it.
// In case of errors, a 400 response is written and false is returned.
func Bind(c *gin.Context, req any, b binding.Binding) bool {
	switch err := c.ShouldBindWith(req, b).(type) {
	case nil:
		return true
	case *validator.InvalidValidationError:
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": err.Error(),
		})
	case validator.ValidationErrors:
		var nameToErrs map[string][]string
		for _, ferr := range err {
			AddErr(&nameToErrs, ferr.Field(), ferr.Error())
		}
		c.JSON(http.StatusBadRequest, gin.H{"fields": nameToErrs})
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": err.Error(),
		})
	}
	return false
}

// BindURI binds the path params into req, like Bind.
func BindURI(c *gin.Context, req any) bool {
	if err := c.ShouldBindUri(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return false
	}
	return true
}

// AddErr appends msgs to the name entry of errs, allocating it lazily.
func AddErr(errs *map[string][]string, name string, msgs ...string) {
	if (*errs) == nil {
		*errs = make(map[string][]string)
	}
	(*errs)[name] = append((*errs)[name], msgs...)
}

// SerErr writes err as a JSON response. The status code and the body
// shape depend on the error kind:
//
//   - *cerr.ValidationError: 400 with the per field messages,
//   - *cerr.SessionError: 401 with the redirection target,
//   - *cerr.UploadError: 502 naming the failed file,
//   - *cerr.RemoteError: the backend status (or 502 for transport
//     failures) with the backend message,
//   - *cerr.Error: its status code,
//   - anything else: 500.
func SerErr(c *gin.Context, err error) {
	var (
		ve *cerr.ValidationError
		se *cerr.SessionError
		ue *cerr.UploadError
		re *cerr.RemoteError
		ce *cerr.Error
	)
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": "Please correct the highlighted fields.",
			"fields": ve.Fields,
		})
	case errors.As(err, &se):
		c.JSON(http.StatusUnauthorized, gin.H{
			"detail":   se.Err.Error(),
			"redirect": se.Redirect,
		})
	case errors.As(err, &ue):
		c.JSON(http.StatusBadGateway, gin.H{
			"detail": "Upload failed. Please try again.",
			"file":   ue.File,
		})
	case errors.As(err, &re):
		status := re.StatusCode
		if status == 0 {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{
			"detail": re.UserMessage("Something went wrong. Please try again."),
		})
	case errors.As(err, &ce):
		c.JSON(ce.HTTPStatusCode, gin.H{
			"detail": ce.Err.Error(),
		})
	default:
		log.Error(c, "unexpected shell error", log.Err("err", err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": err.Error(),
		})
	}
}

// Index parses the name path param as a non-negative index.
func Index(c *gin.Context, name string) (int, bool) {
	i, err := strconv.Atoi(c.Param(name))
	if err != nil || i < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": "Path param " + name + " is not an index.",
		})
		return 0, false
	}
	return i, true
}

// Assert records msgs for the name entry of errs if ok is false and
// returns ok, so checks may be chained.
func Assert(errs *map[string][]string, ok bool, name string, msgs ...string) bool {
	if ok {
		return true
	}
	AddErr(errs, name, msgs...)
	return false
}

// UUID parses the name path param as a UUID.
func UUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": "Path param " + name + " is not UUID.",
		})
		return uuid.Nil, false
	}
	return id, true
}
