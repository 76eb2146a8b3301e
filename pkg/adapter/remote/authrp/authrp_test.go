// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package authrp_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/momeni/yacht-charter/pkg/adapter/remote/apiclient"
	"github.com/momeni/yacht-charter/pkg/adapter/remote/authrp"
	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, bodies map[string]*map[string]any) *httptest.Server {
	mux := http.NewServeMux()
	handle := func(path, resp string) {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			m := map[string]any{}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&m))
			bodies[path] = &m
			_, _ = w.Write([]byte(resp))
		})
	}
	handle("/auth/signin", `{"token":"tok","user":{"id":"u1","name":"Olive","type":"owner"}}`)
	handle("/auth/signup", `{"message":"otp sent","token":"signup-token"}`)
	handle("/auth/generate-otp", `{"message":"otp sent"}`)
	handle("/auth/verify-otp", `{"message":"verified"}`)
	handle("/user/logout", `{"message":"bye"}`)
	return httptest.NewServer(mux)
}

func TestAuthFlows(t *testing.T) {
	bodies := map[string]*map[string]any{}
	srv := newServer(t, bodies)
	defer srv.Close()
	r := authrp.New(apiclient.New(srv.URL, 5*time.Second, nil))
	ctx := context.Background()

	res, err := r.SignIn(ctx, model.SignInRequest{Email: "o@x", Password: "pw", Role: model.RoleOwner})
	require.NoError(t, err)
	assert.Equal(t, "tok", res.Token)
	assert.Equal(t, model.RoleOwner, res.User.Role)
	assert.Equal(t, "owner", (*bodies["/auth/signin"])["role"])

	token, err := r.SignUp(ctx, model.SignUpRequest{Name: "Olive", Email: "o@x"})
	require.NoError(t, err)
	assert.Equal(t, "signup-token", token)

	require.NoError(t, r.GenerateOTP(ctx, "o@x"))
	assert.Equal(t, "o@x", (*bodies["/auth/generate-otp"])["email"])

	require.NoError(t, r.VerifyOTP(ctx, model.OTPVerification{OTP: "1", Token: token, Role: model.RoleOwner}))
	assert.Equal(t, map[string]any{
		"otp": "1", "token": "signup-token", "role": "owner",
	}, *bodies["/auth/verify-otp"])

	require.NoError(t, r.Logout(ctx, "tok"))
	assert.Equal(t, "tok", (*bodies["/user/logout"])["token"])
}

func TestSignInWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user":{}}`))
	}))
	defer srv.Close()
	_, err := authrp.New(apiclient.New(srv.URL, time.Second, nil)).
		SignIn(context.Background(), model.SignInRequest{})
	assert.ErrorIs(t, err, authrp.ErrMissingToken)
}
