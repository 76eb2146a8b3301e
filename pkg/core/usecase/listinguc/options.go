// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package listinguc

import (
	"errors"
	"fmt"
	"time"
)

// Option is a functional option for the listing use case.
type Option func(uc *UseCase) error

// WithClock option configures a listing UseCase instance in order to
// take the current time from now. The current year bounds the accepted
// manufacture years. This option may be passed to the New() function.
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) error {
		if now == nil {
			return errors.New("clock is nil")
		}
		if uc.now != nil {
			return errors.New("clock is already configured")
		}
		uc.now = now
		return nil
	}
}

// WithMaxWorkflows option limits the number of workflows which may be
// alive at the same time. This option may be passed to the New()
// function.
func WithMaxWorkflows(n int) Option {
	return func(uc *UseCase) error {
		if n <= 0 {
			return fmt.Errorf("max workflows (%d) is not positive", n)
		}
		if uc.maxWorkflows != 0 {
			return errors.New("max workflows is already configured")
		}
		uc.maxWorkflows = n
		return nil
	}
}

// WithIdleTimeout option makes workflows expire when they are not
// accessed for d, so abandoned workflows do not pile up. This option
// may be passed to the New() function.
func WithIdleTimeout(d time.Duration) Option {
	return func(uc *UseCase) error {
		if d <= 0 {
			return fmt.Errorf("idle timeout (%v) is not positive", d)
		}
		if uc.idleTimeout != 0 {
			return errors.New("idle timeout is already configured")
		}
		uc.idleTimeout = d
		return nil
	}
}
