// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings

import (
	"cmp"
	"fmt"
)

// OutOfRangeError indicates that a setting was out of its acceptable
// range. Value keeps the rejected value while the setting itself is
// clamped into the range by VerifyRange.
type OutOfRangeError[T cmp.Ordered] struct {
	Name        string
	Value       T
	Min, Max    T
	LessThanMin bool
}

// Error implements the error interface.
func (e *OutOfRangeError[T]) Error() string {
	if e.LessThanMin {
		return fmt.Sprintf(
			"%s: %v is less than min (%v)", e.Name, e.Value, e.Min,
		)
	}
	return fmt.Sprintf(
		"%s: %v is greater than max (%v)", e.Name, e.Value, e.Max,
	)
}

// VerifyRange verifies that (**value) is in the inclusive [minb, maxb]
// range. A nil (*value) is accepted as is. An out of range value is
// clamped to the violated boundary and reported by the returned error,
// so callers may choose between rejecting the settings and logging
// the error as a warning.
func VerifyRange[T cmp.Ordered](
	name string, value **T, minb, maxb T,
) *OutOfRangeError[T] {
	if (*value) == nil {
		return nil
	}
	switch v := **value; {
	case v < minb:
		**value = minb
		return &OutOfRangeError[T]{
			Name: name, Value: v, Min: minb, Max: maxb, LessThanMin: true,
		}
	case v > maxb:
		**value = maxb
		return &OutOfRangeError[T]{
			Name: name, Value: v, Min: minb, Max: maxb,
		}
	}
	return nil
}
