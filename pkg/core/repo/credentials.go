// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/momeni/yacht-charter/pkg/core/model"
)

// Credentials is the durable client-local store of the session
// credential. Only the session gate may use it.
type Credentials interface {
	// Load returns the persisted credential. A missing credential is
	// reported as (nil, nil). Partially persisted credentials are
	// returned as is, so the caller can detect and clear them.
	Load(ctx context.Context) (*model.Credential, error)

	// Save persists c, replacing any previous credential.
	Save(ctx context.Context, c model.Credential) error

	// Clear removes the persisted credential. Clearing a missing
	// credential is not an error.
	Clear(ctx context.Context) error
}
