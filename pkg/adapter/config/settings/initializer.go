// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings

// Nil2Zero makes (*t) point to a newly allocated zero value of T if it
// was nil. A non-nil (*t) is left intact.
func Nil2Zero[T any](t **T) {
	if (*t) != nil {
		return
	}
	var zero T
	(*t) = &zero
}

// OverwriteNil makes (*dst) point to a copy of def if (*dst) was nil.
// It is used for filling the missing settings with their defaults.
// A non-nil (*dst) is left intact.
func OverwriteNil[T any](dst **T, def T) {
	if (*dst) != nil {
		return
	}
	(*dst) = &def
}

// OverwriteNonEmpty overwrites (*dst) with v unless v is empty. It is
// used for applying the environment variable overrides.
func OverwriteNonEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
