// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package credentialsrp_test

import (
	"context"
	"testing"
	"time"

	"github.com/momeni/yacht-charter/internal/test/dbcontainer"
	"github.com/momeni/yacht-charter/pkg/adapter/db/postgres"
	"github.com/momeni/yacht-charter/pkg/adapter/db/postgres/credentialsrp"
	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/stretchr/testify/suite"
)

type CredentialsTestSuite struct {
	suite.Suite
	Ctx  context.Context
	Pool *postgres.Pool
}

func TestCredentialsTestSuite(t *testing.T) {
	ctx := context.Background()
	_, pool, dfrs, ok := dbcontainer.New(ctx, 60*time.Second, t)
	for _, f := range dfrs {
		defer f()
	}
	if !ok {
		return // errors are already logged
	}
	suite.Run(t, &CredentialsTestSuite{Ctx: ctx, Pool: pool})
}

func (cts *CredentialsTestSuite) TestMissingTable() {
	r := credentialsrp.New(cts.Pool, "before-schema")
	c, err := r.Load(cts.Ctx)
	cts.Require().NoError(err)
	cts.Nil(c)
	cts.NoError(r.Clear(cts.Ctx))
}

func (cts *CredentialsTestSuite) TestRoundTrip() {
	r := credentialsrp.New(cts.Pool, "default")
	cts.Require().NoError(r.InitSchema(cts.Ctx))
	cts.Require().NoError(r.InitSchema(cts.Ctx), "schema init is idempotent")

	c, err := r.Load(cts.Ctx)
	cts.Require().NoError(err)
	cts.Nil(c)

	cred := model.Credential{Token: "tok", User: []byte(`{"id":"u1","type":"owner"}`)}
	cts.Require().NoError(r.Save(cts.Ctx, cred))
	c, err = r.Load(cts.Ctx)
	cts.Require().NoError(err)
	cts.Equal(&cred, c)

	cred.Token = "tok2"
	cts.Require().NoError(r.Save(cts.Ctx, cred))
	c, err = r.Load(cts.Ctx)
	cts.Require().NoError(err)
	cts.Equal("tok2", c.Token)

	other := credentialsrp.New(cts.Pool, "other")
	c, err = other.Load(cts.Ctx)
	cts.Require().NoError(err)
	cts.Nil(c, "profiles are isolated")

	cts.Require().NoError(r.Clear(cts.Ctx))
	c, err = r.Load(cts.Ctx)
	cts.Require().NoError(err)
	cts.Nil(c)
}
