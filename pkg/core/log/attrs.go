// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package log

import "log/slog"

// Err returns an Attr for err. A nil err is logged as "no-error".
func Err(key string, err error) slog.Attr {
	if err == nil {
		return slog.String(key, "no-error")
	}
	return slog.String(key, err.Error())
}

// Strings returns an Attr for the given list of string values.
func Strings(key string, values []string) slog.Attr {
	return slog.Any(key, values)
}

// Count returns an Attr for the length of a batch, e.g., the number of
// files in an upload or the number of listings in a response.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Valuer returns an Attr for value which is resolved lazily, e.g., a
// config setting which formats itself for logs.
func Valuer(key string, value slog.LogValuer) slog.Attr {
	return slog.Any(key, value)
}
