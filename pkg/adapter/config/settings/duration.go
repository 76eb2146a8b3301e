// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings

import (
	"log/slog"
	"strings"
	"time"
)

// Duration is a time.Duration which is (de)serialized as a string,
// like 2h30m, in the configuration files.
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// The data must conform to the time.ParseDuration format. The d is
// updated only if data could be parsed.
func (d *Duration) UnmarshalText(data []byte) error {
	dd, err := time.ParseDuration(string(data))
	if err != nil {
		return err
	}
	*d = Duration(dd)
	return nil
}

// String returns d in the time.Duration format, dropping its zero
// trailing components, e.g., 1h instead of 1h0m0s. A zero duration is
// formatted as 0s.
func (d Duration) String() string {
	s := time.Duration(d).String()
	if strings.HasSuffix(s, "m0s") {
		s = s[:len(s)-2]
	}
	if strings.HasSuffix(s, "h0m") {
		s = s[:len(s)-2]
	}
	return s
}

// MarshalText implements the encoding.TextMarshaler interface.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// LogValue implements slog.LogValuer.
func (d Duration) LogValue() slog.Value {
	return slog.DurationValue(time.Duration(d))
}
