// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package credentialsrp is the file adapter of the credentials
// repository. The credential is kept as a small YAML document which is
// only readable by its owner and is replaced atomically on every save.
package credentialsrp

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/momeni/yacht-charter/pkg/core/repo"
	"gopkg.in/yaml.v3"
)

// record is the serialized form of a credential. The user record is
// kept as a string, so it is stored verbatim even when it is malformed.
type record struct {
	Token string `yaml:"token,omitempty"`
	User  string `yaml:"user,omitempty"`
}

// Repo keeps the credential in one file.
type Repo struct {
	path string
	mu   sync.Mutex
}

// New instantiates a credentials Repo which uses the path file.
func New(path string) *Repo {
	return &Repo{path: path}
}

var _ repo.Credentials = (*Repo)(nil)

// Load implements repo.Credentials.Load.
func (r *Repo) Load(ctx context.Context) (*model.Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", r.path, err)
	}
	var rec record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		// a corrupted file is treated as a missing credential and is
		// replaced by the next Save
		return nil, nil
	}
	if rec.Token == "" && rec.User == "" {
		return nil, nil
	}
	c := &model.Credential{Token: rec.Token}
	if rec.User != "" {
		c.User = []byte(rec.User)
	}
	return c, nil
}

// Save implements repo.Credentials.Save.
func (r *Repo) Save(ctx context.Context, c model.Credential) error {
	data, err := yaml.Marshal(record{Token: c.Token, User: string(c.User)})
	if err != nil {
		return fmt.Errorf("marshaling credential: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating %q: %w", dir, err)
	}
	f, err := os.CreateTemp(dir, ".credential-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmp := f.Name()
	defer os.Remove(tmp) // no-op after a successful rename
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("writing %q: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replacing %q: %w", r.path, err)
	}
	return nil
}

// Clear implements repo.Credentials.Clear.
func (r *Repo) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	err := os.Remove(r.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing %q: %w", r.path, err)
	}
	return nil
}
