// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package credentialsrp_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/momeni/yacht-charter/pkg/adapter/db/file/credentialsrp"
	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "credential.yaml")
	r := credentialsrp.New(path)

	c, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, c)
	require.NoError(t, r.Clear(ctx), "clearing a missing credential")

	cred := model.Credential{Token: "tok", User: []byte(`{"id":"u1","type":"owner"}`)}
	require.NoError(t, r.Save(ctx, cred))
	st, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), st.Mode().Perm())

	c, err = r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, &cred, c)

	require.NoError(t, r.Clear(ctx))
	c, err = r.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestMalformedRecordIsKept(t *testing.T) {
	ctx := context.Background()
	r := credentialsrp.New(filepath.Join(t.TempDir(), "credential.yaml"))
	cred := model.Credential{Token: "tok", User: []byte("{not json")}
	require.NoError(t, r.Save(ctx, cred))
	c, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, &cred, c)
}

func TestCorruptedFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "credential.yaml")
	require.NoError(t, os.WriteFile(path, []byte("token: [unterminated"), 0o600))
	c, err := credentialsrp.New(path).Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, c, "a corrupted file is treated as missing")
}
