// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package authrp implements the repo.Auth gateway.
package authrp

import (
	"context"
	"errors"
	"net/http"

	"github.com/momeni/yacht-charter/pkg/adapter/remote/apiclient"
	"github.com/momeni/yacht-charter/pkg/core/cerr"
	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/momeni/yacht-charter/pkg/core/repo"
)

// ErrMissingToken indicates that a successful response had no token.
var ErrMissingToken = errors.New("response has no token")

// Repo is the auth gateway.
type Repo struct {
	c *apiclient.Client
}

// New instantiates an auth gateway.
func New(c *apiclient.Client) *Repo {
	return &Repo{c: c}
}

var _ repo.Auth = (*Repo)(nil)

// SignIn implements repo.Auth.SignIn using POST /auth/signin.
func (r *Repo) SignIn(ctx context.Context, req model.SignInRequest) (*model.AuthResult, error) {
	const op = "auth.SignIn"
	res := &model.AuthResult{}
	if err := r.c.Do(ctx, op, http.MethodPost, "/auth/signin", req, res); err != nil {
		return nil, err
	}
	if res.Token == "" {
		return nil, &cerr.RemoteError{Op: op, Err: ErrMissingToken}
	}
	return res, nil
}

// SignUp implements repo.Auth.SignUp using POST /auth/signup.
func (r *Repo) SignUp(ctx context.Context, req model.SignUpRequest) (string, error) {
	const op = "auth.SignUp"
	var res struct {
		Token string `json:"token"`
	}
	if err := r.c.Do(ctx, op, http.MethodPost, "/auth/signup", req, &res); err != nil {
		return "", err
	}
	if res.Token == "" {
		return "", &cerr.RemoteError{Op: op, Err: ErrMissingToken}
	}
	return res.Token, nil
}

// GenerateOTP implements repo.Auth.GenerateOTP using
// POST /auth/generate-otp.
func (r *Repo) GenerateOTP(ctx context.Context, email string) error {
	req := struct {
		Email string `json:"email"`
	}{Email: email}
	return r.c.Do(ctx, "auth.GenerateOTP", http.MethodPost, "/auth/generate-otp", req, nil)
}

// VerifyOTP implements repo.Auth.VerifyOTP using POST /auth/verify-otp.
func (r *Repo) VerifyOTP(ctx context.Context, v model.OTPVerification) error {
	return r.c.Do(ctx, "auth.VerifyOTP", http.MethodPost, "/auth/verify-otp", v, nil)
}

// Logout implements repo.Auth.Logout using POST /user/logout. The
// token is sent explicitly since the session may be cleared already.
func (r *Repo) Logout(ctx context.Context, token string) error {
	req := struct {
		Token string `json:"token"`
	}{Token: token}
	return r.c.Do(ctx, "auth.Logout", http.MethodPost, "/user/logout", req, nil)
}
