// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package sessionuc

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/momeni/yacht-charter/pkg/core/cerr"
	"github.com/momeni/yacht-charter/pkg/core/log"
	"github.com/momeni/yacht-charter/pkg/core/model"
)

// SignupStep is a step of the signup flow.
type SignupStep string

// Valid values for the SignupStep enum.
const (
	SignupWelcome SignupStep = "welcome"
	SignupDetails SignupStep = "signup"
	SignupOTP     SignupStep = "otp"
	SignupSuccess SignupStep = "success"
)

// SignupForm carries the signup inputs.
type SignupForm struct {
	model.SignUpRequest
	AgreeToTerms bool `json:"agreeToTerms"`
}

// Signup is a pending signup. Its Token must be presented again in
// order to verify the one-time password.
type Signup struct {
	Step     SignupStep `json:"step"`
	Email    string     `json:"email"`
	Role     model.Role `json:"role"`
	Token    string     `json:"token"`
	Redirect string     `json:"redirect,omitempty"`
}

// Signup registers a user. All inputs are required and the terms must
// be accepted. On success, a one-time password is sent to the user and
// the returned Signup is on its otp step.
func (uc *UseCase) Signup(ctx context.Context, f SignupForm) (*Signup, error) {
	var fe cerr.FieldErrors
	fe.Assert(strings.TrimSpace(f.Name) != "", "name", "Name is required")
	fe.Assert(strings.TrimSpace(f.Email) != "", "email", "Email is required")
	fe.Assert(strings.TrimSpace(f.Phone) != "", "phone", "Phone number is required")
	fe.Assert(f.Password != "", "password", "Password is required")
	fe.Assert(f.AgreeToTerms, "agreeToTerms", "You must agree to the terms and conditions")
	if err := fe.Err(); err != nil {
		return nil, err
	}
	if f.Role == "" {
		f.Role = uc.gate.role
	}
	token, err := uc.auth.SignUp(ctx, f.SignUpRequest)
	if err != nil {
		return nil, fmt.Errorf("signing up: %w", err)
	}
	log.Info(ctx, "signed up", slog.String("email", f.Email))
	return &Signup{
		Step: SignupOTP, Email: f.Email, Role: f.Role, Token: token,
	}, nil
}

// ResendOTP asks the backend to send a fresh one-time password.
func (uc *UseCase) ResendOTP(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return cerr.FieldErrors{"email": "Email is required"}.Err()
	}
	if err := uc.auth.GenerateOTP(ctx, email); err != nil {
		return fmt.Errorf("generating otp: %w", err)
	}
	return nil
}

// VerifyOTP confirms the s signup with the otp one-time password.
// On success, the returned Signup is on its success step and the user
// should be sent to the login entry point.
func (uc *UseCase) VerifyOTP(ctx context.Context, s Signup, otp string) (*Signup, error) {
	var fe cerr.FieldErrors
	fe.Assert(strings.TrimSpace(otp) != "", "otp", "OTP is required")
	fe.Assert(s.Token != "", "token", "Signup token is missing")
	if err := fe.Err(); err != nil {
		return nil, err
	}
	if s.Role == "" {
		s.Role = uc.gate.role
	}
	err := uc.auth.VerifyOTP(ctx, model.OTPVerification{
		OTP: strings.TrimSpace(otp), Token: s.Token, Role: s.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("verifying otp: %w", err)
	}
	s.Step = SignupSuccess
	s.Redirect = LoginPath
	return &s, nil
}
