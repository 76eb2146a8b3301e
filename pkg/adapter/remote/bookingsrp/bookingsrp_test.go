// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package bookingsrp_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/momeni/yacht-charter/pkg/adapter/remote/apiclient"
	"github.com/momeni/yacht-charter/pkg/adapter/remote/bookingsrp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookings(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/owner/current/rides", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"_id":"B1","yachtId":"Y1","totalAmount":4000}]`))
	})
	mux.HandleFunc("/owner/prev/rides", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"bookings":[{"_id":"B2","yachtId":"Y2"}]}`))
	})
	mux.HandleFunc("/owner/prev/ride/B2", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"booking":{"_id":"B2","rideStatus":"completed"}}`))
	})
	mux.HandleFunc("/owner/me/earnings", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"sevenDaysEarnings":10,"thirtyDaysEarnings":20,"totalEarnings":30}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	r := bookingsrp.New(apiclient.New(srv.URL, 5*time.Second, nil))
	ctx := context.Background()

	cur, err := r.Current(ctx)
	require.NoError(t, err)
	require.Len(t, cur, 1)
	assert.Equal(t, 4000.0, cur[0].TotalAmount)

	prev, err := r.Previous(ctx)
	require.NoError(t, err)
	require.Len(t, prev, 1)
	assert.Equal(t, "Y2", prev[0].YachtID)

	ride, err := r.PreviousRide(ctx, "B2")
	require.NoError(t, err)
	assert.Equal(t, "completed", ride.Status)

	e, err := r.Earnings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 30.0, e.Total)
}
