// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/momeni/yacht-charter/pkg/core/model"
)

// MediaHost uploads a file to the external asset host and returns its
// stable URL. Hosted assets are never deleted by this client.
type MediaHost interface {
	Upload(ctx context.Context, f model.MediaFile) (url string, err error)
}
