// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cerr

import (
	"sort"
	"strings"
)

// FieldErrors maps a field name to its error message. An empty (or nil)
// map means that no field was invalid.
type FieldErrors map[string]string

// Add records msg for the name field, replacing a previous message.
func (fe *FieldErrors) Add(name, msg string) {
	if *fe == nil {
		*fe = make(FieldErrors)
	}
	(*fe)[name] = msg
}

// Assert records msg for the name field if ok is false and returns ok.
func (fe *FieldErrors) Assert(ok bool, name, msg string) bool {
	if !ok {
		fe.Add(name, msg)
	}
	return ok
}

// Keys returns the invalid field names in a sorted order.
func (fe FieldErrors) Keys() []string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Err returns nil for an empty map and a *ValidationError otherwise.
func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}
	return &ValidationError{Fields: fe}
}

// ValidationError is a local, field-scoped error. It is never sent over
// the wire and may always be fixed by correcting the reported fields.
// All invalid fields are reported, not only the first one.
type ValidationError struct {
	Fields FieldErrors
}

// Error implements the error interface, listing all invalid fields.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid fields:")
	for _, k := range e.Fields.Keys() {
		sb.WriteString(" ")
		sb.WriteString(k)
		sb.WriteString(" (")
		sb.WriteString(e.Fields[k])
		sb.WriteString(")")
	}
	return sb.String()
}
