// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cerr

import "fmt"

// UploadError indicates that a media batch could not be uploaded as a
// whole. None of the batch files are added to the draft in that case.
// File is the name of the first file which failed.
type UploadError struct {
	File string
	Err  error
}

// Error implements the error interface.
func (e *UploadError) Error() string {
	return fmt.Sprintf("uploading %q: %v", e.File, e.Err)
}

// Unwrap returns the underlying upload error.
func (e *UploadError) Unwrap() error {
	return e.Err
}
