// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cerr contains the core errors which may be returned by the
// use cases. Each error kind knows its HTTP status code, so the
// navigation shell may report it to its web client without having to
// inspect the error chain for every single use case.
package cerr

import (
	"fmt"
	"net/http"
)

// Error wraps Err with the HTTP status which describes its kind.
type Error struct {
	Err            error
	HTTPStatusCode int
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.HTTPStatusCode, e.Err.Error())
}

// BadRequest wraps err which was caused by an invalid input.
func BadRequest(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusBadRequest}
}

// Authentication wraps err which was caused by a missing session.
func Authentication(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusUnauthorized}
}

// Authorization wraps err which was caused by an ineligible user.
func Authorization(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusForbidden}
}

// NotFound wraps err which was caused by a missing entity, such as an
// expired workflow.
func NotFound(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusNotFound}
}

// Conflict wraps err which was caused by an operation which is not
// allowed in the current state, such as editing a reviewed draft.
func Conflict(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusConflict}
}
