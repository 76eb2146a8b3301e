// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "io"

// MediaFile is a user selected file which may be uploaded to the
// external image host. The Open function may be called more than once
// and each call must return a fresh reader from the file beginning.
type MediaFile struct {
	Name        string // base name of the file
	ContentType string // declared media type, possibly empty
	Size        int64  // size in bytes
	Open        func() (io.ReadCloser, error)
}
