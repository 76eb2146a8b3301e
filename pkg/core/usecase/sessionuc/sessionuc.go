// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package sessionuc contains the session UseCase and its Gate. The Gate
// protects the owner-side routes by evaluating the persisted credential
// on every navigation, while the UseCase runs the login, signup (with
// its one-time password verification), and logout flows.
package sessionuc

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/momeni/yacht-charter/pkg/core/cerr"
	"github.com/momeni/yacht-charter/pkg/core/log"
	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/momeni/yacht-charter/pkg/core/repo"
)

// UseCase represents the session use case.
type UseCase struct {
	auth repo.Auth
	gate *Gate
}

// New instantiates a session use case.
func New(auth repo.Auth, gate *Gate) *UseCase {
	return &UseCase{auth: auth, gate: gate}
}

// Gate returns the session gate.
func (uc *UseCase) Gate() *Gate {
	return uc.gate
}

// Status evaluates the current session.
func (uc *UseCase) Status(ctx context.Context) (*Status, error) {
	return uc.gate.Evaluate(ctx)
}

// Login signs in with the email and password and persists the obtained
// credential. The session is evaluated afterwards, so a user with an
// ineligible role is logged out again and a *cerr.SessionError is
// returned along with the unauthenticated status.
func (uc *UseCase) Login(ctx context.Context, r model.SignInRequest) (*Status, error) {
	var fe cerr.FieldErrors
	fe.Assert(strings.TrimSpace(r.Email) != "", "email", "Email is required")
	fe.Assert(r.Password != "", "password", "Password is required")
	if err := fe.Err(); err != nil {
		return nil, err
	}
	if r.Role == "" {
		r.Role = uc.gate.role
	}
	res, err := uc.auth.SignIn(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("signing in: %w", err)
	}
	if err := uc.gate.Set(ctx, res.Token, res.User); err != nil {
		return nil, err
	}
	s, err := uc.gate.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	if s.State != Authenticated {
		return s, &cerr.SessionError{Redirect: s.Redirect, Err: s.Reason}
	}
	log.Info(ctx, "logged in", slog.String("user", s.User.ID))
	return s, nil
}

// Logout invalidates the token on the backend, best effort, and clears
// the persisted credential anyway.
func (uc *UseCase) Logout(ctx context.Context) (*Status, error) {
	token, err := uc.gate.Token(ctx)
	if err != nil {
		log.Warn(ctx, "reading token for logout", log.Err("err", err))
	}
	if token != "" {
		if err := uc.auth.Logout(ctx, token); err != nil {
			log.Warn(ctx, "backend logout failed", log.Err("err", err))
		}
	}
	if err := uc.gate.Clear(ctx); err != nil {
		return nil, err
	}
	return unauthenticated(nil), nil
}
