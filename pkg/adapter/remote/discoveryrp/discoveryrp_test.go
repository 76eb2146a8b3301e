// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package discoveryrp_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/momeni/yacht-charter/pkg/adapter/remote/apiclient"
	"github.com/momeni/yacht-charter/pkg/adapter/remote/discoveryrp"
	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscovery(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/customer/listAll", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"yachts":[{"_id":"Y1"},{"_id":"Y2"}]}`))
	})
	mux.HandleFunc("/customer/topYatch", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"_id":"Y2"}]`))
	})
	mux.HandleFunc("/booking/idealYatchs", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		_, _ = w.Write([]byte(`{"yachts":[]}`))
	})
	mux.HandleFunc("/booking/create", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"booking":{"_id":"B1","yachtId":"Y1"},"orderId":"O1"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	r := discoveryrp.New(apiclient.New(srv.URL, 5*time.Second, nil))
	ctx := context.Background()

	all, err := r.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	top, err := r.Top(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Y2", top[0].ID)
	ideal, err := r.Ideal(ctx, model.YachtQuery{Location: "panjim", Capacity: 2})
	require.NoError(t, err)
	assert.Empty(t, ideal)
	rc, err := r.Book(ctx, model.BookingRequest{YachtID: "Y1"})
	require.NoError(t, err)
	assert.Equal(t, "O1", rc.OrderID)
}
