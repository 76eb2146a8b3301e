// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cerr

import (
	"fmt"
	"net/http"
)

// RemoteError indicates that the remote marketplace API answered with
// a non-success response (StatusCode is set) or could not be reached
// at all (StatusCode is zero and Err is set).
// Message is the backend provided message, if any, so it may be shown
// to the user as is.
type RemoteError struct {
	Op         string // the gateway operation, e.g., "listings.Create"
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("%s: [%d] %s", e.Op, e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf(
			"%s: [%d] %s", e.Op, e.StatusCode,
			http.StatusText(e.StatusCode),
		)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

// Unwrap returns the transport error, if any.
func (e *RemoteError) Unwrap() error {
	return e.Err
}

// NotFound reports if the backend answered with 404.
func (e *RemoteError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// UserMessage returns a message which may be shown to the user.
// The fallback is used when the backend did not provide a message.
func (e *RemoteError) UserMessage(fallback string) string {
	if e.Message != "" {
		return e.Message
	}
	return fallback
}
