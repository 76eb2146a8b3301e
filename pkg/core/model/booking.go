// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// Booking is a ride (i.e., a booking) of an owned yacht. The Yacht
// field is filled by the dashboard use case when the yacht details
// could be fetched and is nil otherwise.
type Booking struct {
	ID            string         `json:"_id"`
	YachtID       string         `json:"yachtId"`
	CustomerName  string         `json:"customerName,omitempty"`
	StartDate     time.Time      `json:"startDate"`
	EndDate       time.Time      `json:"endDate"`
	Location      string         `json:"location,omitempty"`
	Capacity      int            `json:"capacity,omitempty"`
	TotalAmount   float64        `json:"totalAmount"`
	PaymentStatus string         `json:"paymentStatus,omitempty"`
	Status        string         `json:"rideStatus,omitempty"`
	Yacht         *ListingDetail `json:"yacht,omitempty"`
}

// Earnings summarizes the owner earnings over some windows.
type Earnings struct {
	SevenDays       float64   `json:"sevenDaysEarnings"`
	ThirtyDays      float64   `json:"thirtyDaysEarnings"`
	Total           float64   `json:"totalEarnings"`
	SevenDaysList   []Booking `json:"sevenDaysBookings"`
	ThirtyDaysList  []Booking `json:"thirtyDaysBookings"`
	AllBookingsList []Booking `json:"allBookings"`
}

// YachtQuery describes a customer search for ideal yachts.
type YachtQuery struct {
	Location  string    `json:"location"`
	StartDate time.Time `json:"startDate"`
	StartTime string    `json:"startTime"`
	Duration  float64   `json:"duration"`
	Capacity  int       `json:"capacity"`
}

// BookingRequest asks the backend to book one yacht.
type BookingRequest struct {
	YachtID     string    `json:"yachtId"`
	Location    string    `json:"location"`
	StartDate   time.Time `json:"startDate"`
	StartTime   string    `json:"startTime"`
	Sailing     float64   `json:"sailingTime"`
	Anchoring   float64   `json:"stillTime"`
	Capacity    int       `json:"capacity"`
	PackageType string    `json:"packages,omitempty"`
	Addons      []string  `json:"addonServices,omitempty"`
}

// BookingReceipt is returned by the backend after creating a booking.
type BookingReceipt struct {
	Booking Booking `json:"booking"`
	OrderID string  `json:"orderId,omitempty"`
	Amount  float64 `json:"amount,omitempty"`
}
