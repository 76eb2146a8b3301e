// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"os"

	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/momeni/yacht-charter/pkg/core/usecase/sessionuc"
	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Owner session actions",
	Long: `Owner session actions can be chosen by sub-commands.
The login and logout update the persisted credential, the status
reports it, and the signup and verify register a new owner account
through a one-time password.`,
}

var authFlags struct {
	email    string
	password string
	name     string
	phone    string
	agree    bool
	token    string
	otp      string
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in as an owner and persist the credential",
	Long: `Sign in as an owner and persist the credential.
The password may be passed by the YC_PASSWORD environment variable.`,
	RunE: runE(func(ctx context.Context, e *env, _ []string) (any, error) {
		pw := authFlags.password
		if pw == "" {
			pw = os.Getenv("YC_PASSWORD")
		}
		return e.uc.Session.Login(ctx, model.SignInRequest{
			Email: authFlags.email, Password: pw, Role: model.RoleOwner,
		})
	}),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the persisted credential",
	RunE: runE(func(ctx context.Context, e *env, _ []string) (any, error) {
		return e.uc.Session.Logout(ctx)
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report the session state",
	RunE: runE(func(ctx context.Context, e *env, _ []string) (any, error) {
		return e.uc.Session.Status(ctx)
	}),
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Register an owner account and send a one-time password",
	RunE: runE(func(ctx context.Context, e *env, _ []string) (any, error) {
		return e.uc.Session.Signup(ctx, sessionuc.SignupForm{
			SignUpRequest: model.SignUpRequest{
				Name:     authFlags.name,
				Email:    authFlags.email,
				Phone:    authFlags.phone,
				Password: authFlags.password,
				Role:     model.RoleOwner,
			},
			AgreeToTerms: authFlags.agree,
		})
	}),
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the one-time password of a pending signup",
	RunE: runE(func(ctx context.Context, e *env, _ []string) (any, error) {
		return e.uc.Session.VerifyOTP(ctx, sessionuc.Signup{
			Step:  sessionuc.SignupOTP,
			Email: authFlags.email,
			Role:  model.RoleOwner,
			Token: authFlags.token,
		}, authFlags.otp)
	}),
}

var resendCmd = &cobra.Command{
	Use:   "resend",
	Short: "Send a new one-time password",
	RunE: runE(func(ctx context.Context, e *env, _ []string) (any, error) {
		return nil, e.uc.Session.ResendOTP(ctx, authFlags.email)
	}),
}

func init() {
	fs := loginCmd.Flags()
	fs.StringVar(&authFlags.email, "email", "", "owner email")
	fs.StringVar(&authFlags.password, "password", "", "owner password")

	fs = signupCmd.Flags()
	fs.StringVar(&authFlags.name, "name", "", "full name")
	fs.StringVar(&authFlags.email, "email", "", "email address")
	fs.StringVar(&authFlags.phone, "phone", "", "phone number")
	fs.StringVar(&authFlags.password, "password", "", "account password")
	fs.BoolVar(&authFlags.agree, "agree", false, "accept the terms")

	fs = verifyCmd.Flags()
	fs.StringVar(&authFlags.email, "email", "", "email address")
	fs.StringVar(&authFlags.token, "token", "", "signup token")
	fs.StringVar(&authFlags.otp, "otp", "", "one-time password")

	resendCmd.Flags().StringVar(&authFlags.email, "email", "", "email address")

	authCmd.AddCommand(loginCmd, logoutCmd, statusCmd)
	authCmd.AddCommand(signupCmd, verifyCmd, resendCmd)
	rootCmd.AddCommand(authCmd)
}
