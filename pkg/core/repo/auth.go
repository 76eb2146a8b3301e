// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/momeni/yacht-charter/pkg/core/model"
)

// Auth is the authentication gateway of the remote API.
type Auth interface {
	SignIn(ctx context.Context, r model.SignInRequest) (*model.AuthResult, error)

	// SignUp registers a user and returns a signup token which must
	// be presented again while verifying the one-time password.
	SignUp(ctx context.Context, r model.SignUpRequest) (token string, err error)

	GenerateOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, v model.OTPVerification) error

	// Logout invalidates the token on the backend side.
	Logout(ctx context.Context, token string) error
}

// Bookings is the owner bookings and earnings gateway.
type Bookings interface {
	Current(ctx context.Context) ([]model.Booking, error)
	Previous(ctx context.Context) ([]model.Booking, error)
	PreviousRide(ctx context.Context, id string) (*model.Booking, error)
	Earnings(ctx context.Context) (*model.Earnings, error)
}

// Discovery is the customer-side discovery and booking gateway.
type Discovery interface {
	ListAll(ctx context.Context) ([]model.ListingDetail, error)
	Top(ctx context.Context) ([]model.ListingDetail, error)
	Ideal(ctx context.Context, q model.YachtQuery) ([]model.ListingDetail, error)
	Book(ctx context.Context, r model.BookingRequest) (*model.BookingReceipt, error)
}
