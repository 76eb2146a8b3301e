// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package credentialsrp is the PostgreSQL adapter of the credentials
// repository. Each row keeps the credential of one named profile, so
// a shared database may hold the sessions of several shell instances.
package credentialsrp

import (
	"context"

	"github.com/momeni/yacht-charter/pkg/adapter/db/postgres"
	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/momeni/yacht-charter/pkg/core/repo"
)

// Repo represents the credentials repository instance.
type Repo struct {
	pool    repo.Pool
	profile string
}

// New instantiates a credentials Repo which keeps the credential of
// the profile profile using the p connections pool.
func New(p repo.Pool, profile string) *Repo {
	return &Repo{pool: p, profile: profile}
}

var _ repo.Credentials = (*Repo)(nil)

// InitSchema creates the credentials table if it is missing.
func (cr *Repo) InitSchema(ctx context.Context) error {
	return cr.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return InitSchema(ctx, c.(*postgres.Conn))
	})
}

// Load implements repo.Credentials.Load.
func (cr *Repo) Load(ctx context.Context) (cred *model.Credential, err error) {
	err = cr.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		cred, err = Load(ctx, c.(*postgres.Conn), cr.profile)
		return err
	})
	if err != nil {
		cred = nil
	}
	return
}

// Save implements repo.Credentials.Save.
func (cr *Repo) Save(ctx context.Context, cred model.Credential) error {
	return cr.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			return Save(ctx, tx.(*postgres.Tx), cr.profile, cred)
		})
	})
}

// Clear implements repo.Credentials.Clear.
func (cr *Repo) Clear(ctx context.Context) error {
	return cr.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return Clear(ctx, c.(*postgres.Conn), cr.profile)
	})
}
