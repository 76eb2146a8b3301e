// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// Role is the marketplace role of a user. Only the RoleOwner may reach
// the protected (owner-side) routes of the navigation shell.
type Role string

// Known roles.
const (
	RoleOwner    Role = "owner"
	RoleCustomer Role = "customer"
)

// User is the cached user-profile record of a session.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  Role   `json:"type"`
}

// Credential is the persisted session state, i.e., the opaque auth
// token and the serialized user-profile record. The record is kept
// serialized so a malformed record may be detected when it is read
// back (and not only when it is written).
type Credential struct {
	Token string
	User  []byte
}

// Empty reports if either of the token or the user record is missing.
func (c *Credential) Empty() bool {
	return c == nil || c.Token == "" || len(c.User) == 0
}

// SignInRequest carries the login form inputs.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// SignUpRequest carries the signup form inputs.
type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// OTPVerification confirms a signup using the one-time password which
// was sent to the user and the token which was returned by the signup.
type OTPVerification struct {
	OTP   string `json:"otp"`
	Token string `json:"token"`
	Role  Role   `json:"role"`
}

// AuthResult is the outcome of a successful login.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
