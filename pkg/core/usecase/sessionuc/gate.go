// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package sessionuc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/goccy/go-json"
	"github.com/momeni/yacht-charter/pkg/core/cerr"
	"github.com/momeni/yacht-charter/pkg/core/log"
	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/momeni/yacht-charter/pkg/core/repo"
)

// LoginPath is the entry point which unauthenticated users are sent to.
const LoginPath = "/login"

// State is the authentication state of a session.
type State int

// Valid values for the State enum.
const (
	Unauthenticated State = iota
	Authenticated
)

// String returns the lowercase name of s.
func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// MarshalText implements the encoding.TextMarshaler interface.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// These errors describe why a persisted credential was rejected.
var (
	ErrPartialCredential = errors.New("credential is partially persisted")
	ErrMalformedUser     = errors.New("user record is malformed")
	ErrIneligibleRole    = errors.New("role may not access owner routes")
)

// Status is the outcome of a session evaluation.
type Status struct {
	State    State       `json:"state"`
	User     *model.User `json:"user,omitempty"`
	Redirect string      `json:"redirect,omitempty"`

	// Reason is set when a persisted credential was rejected and
	// cleared, so the session was torn down.
	Reason error `json:"-"`
}

// Gate decides if the protected routes may be rendered. It is the only
// component which accesses the credential store.
type Gate struct {
	store repo.Credentials
	role  model.Role
}

// NewGate instantiates a Gate over the store credential store which
// admits users with the role role.
func NewGate(store repo.Credentials, role model.Role) *Gate {
	return &Gate{store: store, role: role}
}

// Evaluate reads the persisted credential and reports the session
// state. A session is authenticated iff both of the token and the user
// record are present, the record can be parsed, and its role matches
// the gate role. Partial, malformed, and ineligible credentials are
// cleared, so they are not evaluated again. Errors are only returned
// when the store itself fails.
func (g *Gate) Evaluate(ctx context.Context) (*Status, error) {
	c, err := g.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading credential: %w", err)
	}
	if c == nil || (c.Token == "" && len(c.User) == 0) {
		return unauthenticated(nil), nil
	}
	var reason error
	u := &model.User{}
	switch {
	case c.Empty():
		reason = ErrPartialCredential
	case json.Unmarshal(c.User, u) != nil:
		reason = ErrMalformedUser
	case u.Role != g.role:
		reason = fmt.Errorf("%q: %w", u.Role, ErrIneligibleRole)
	default:
		return &Status{State: Authenticated, User: u}, nil
	}
	log.Warn(ctx, "tearing down session", log.Err("reason", reason))
	if err := g.store.Clear(ctx); err != nil {
		return nil, fmt.Errorf("clearing credential: %w", err)
	}
	return unauthenticated(reason), nil
}

func unauthenticated(reason error) *Status {
	return &Status{State: Unauthenticated, Redirect: LoginPath, Reason: reason}
}

// Require evaluates the session and returns a *cerr.SessionError if it
// is not authenticated.
func (g *Gate) Require(ctx context.Context) (*model.User, error) {
	s, err := g.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	if s.State != Authenticated {
		reason := s.Reason
		if reason == nil {
			reason = cerr.ErrNoSession
		}
		return nil, &cerr.SessionError{Redirect: s.Redirect, Err: reason}
	}
	return s.User, nil
}

// Get returns the persisted credential, or nil if there is none.
func (g *Gate) Get(ctx context.Context) (*model.Credential, error) {
	c, err := g.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading credential: %w", err)
	}
	return c, nil
}

// Token returns the persisted token. An empty token is returned when
// there is no session, so calls may proceed anonymously.
func (g *Gate) Token(ctx context.Context) (string, error) {
	c, err := g.Get(ctx)
	if err != nil || c == nil {
		return "", err
	}
	return c.Token, nil
}

// Set persists the token and u user record, replacing any previous
// credential. The session must be evaluated again afterwards.
func (g *Gate) Set(ctx context.Context, token string, u model.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshaling user: %w", err)
	}
	if err := g.store.Save(ctx, model.Credential{Token: token, User: data}); err != nil {
		return fmt.Errorf("saving credential: %w", err)
	}
	log.Debug(ctx, "credential saved", slog.String("user", u.ID))
	return nil
}

// Clear removes the persisted credential.
func (g *Gate) Clear(ctx context.Context) error {
	if err := g.store.Clear(ctx); err != nil {
		return fmt.Errorf("clearing credential: %w", err)
	}
	return nil
}
