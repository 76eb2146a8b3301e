// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cerr

import (
	"errors"
	"fmt"
)

// ErrNoSession indicates that no credential is persisted.
var ErrNoSession = errors.New("no session")

// SessionError indicates that the persisted credential was malformed
// or belonged to an ineligible role. It is remediated by a forced
// logout and a redirection to Redirect (the login entry point).
type SessionError struct {
	Redirect string
	Err      error
}

// Error implements the error interface.
func (e *SessionError) Error() string {
	return fmt.Sprintf("session: %v", e.Err)
}

// Unwrap returns the cause of the session teardown.
func (e *SessionError) Unwrap() error {
	return e.Err
}
