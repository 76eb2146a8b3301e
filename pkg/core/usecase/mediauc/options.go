// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package mediauc

import (
	"errors"
	"fmt"
)

// Option is a functional option for the media use case.
type Option func(uc *UseCase) error

// WithMaxSize option configures the maximum accepted file size in
// bytes. Larger files are skipped with a warning.
func WithMaxSize(n int64) Option {
	return func(uc *UseCase) error {
		if n <= 0 {
			return fmt.Errorf("max size (%d) is not positive", n)
		}
		if uc.maxSize != 0 {
			return errors.New("max size is already configured")
		}
		uc.maxSize = n
		return nil
	}
}

// WithConcurrency option limits the number of concurrent uploads of
// a batch. By default, all files of a batch are uploaded concurrently.
func WithConcurrency(n int) Option {
	return func(uc *UseCase) error {
		if n <= 0 {
			return fmt.Errorf("concurrency (%d) is not positive", n)
		}
		if uc.concurrency != 0 {
			return errors.New("concurrency is already configured")
		}
		uc.concurrency = n
		return nil
	}
}
