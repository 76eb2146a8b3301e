// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package settings provides the generic building blocks of the
// configuration structs: a human-readable Duration type, helpers for
// filling uninitialized (nil) pointer fields with their defaults, and
// a range verifier for bounded numeric settings.
//
// Optional settings are modeled as pointers, so a missing item can be
// told apart from an explicit zero value. The config package fills
// them during its normalization step, so the ultimate components
// receive plain values.
package settings

// Value returns *p if p is not nil, otherwise def is returned.
func Value[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
