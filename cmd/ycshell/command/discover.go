// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"
	"time"

	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/spf13/cobra"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Customer facing yacht discovery",
}

var discoverAll = &cobra.Command{
	Use:   "all",
	Short: "List all yachts",
	RunE: runE(func(ctx context.Context, e *env, _ []string) (any, error) {
		return e.uc.Discovery.ListAll(ctx)
	}),
}

var discoverTop = &cobra.Command{
	Use:   "top",
	Short: "List the top yachts",
	RunE: runE(func(ctx context.Context, e *env, _ []string) (any, error) {
		return e.uc.Discovery.Top(ctx)
	}),
}

var idealFlags struct {
	location string
	date     string
	time     string
	duration float64
	capacity int
}

var discoverIdeal = &cobra.Command{
	Use:   "ideal",
	Short: "List the yachts which fit a trip",
	RunE: runE(func(ctx context.Context, e *env, _ []string) (any, error) {
		d, err := time.Parse(time.DateOnly, idealFlags.date)
		if err != nil {
			return nil, fmt.Errorf("parsing --date: %w", err)
		}
		return e.uc.Discovery.Ideal(ctx, model.YachtQuery{
			Location:  idealFlags.location,
			StartDate: d,
			StartTime: idealFlags.time,
			Duration:  idealFlags.duration,
			Capacity:  idealFlags.capacity,
		})
	}),
}

func init() {
	fs := discoverIdeal.Flags()
	fs.StringVar(&idealFlags.location, "location", "", "pickup location")
	fs.StringVar(&idealFlags.date, "date", "", "trip date (YYYY-MM-DD)")
	fs.StringVar(&idealFlags.time, "time", "", "start time (HH:MM)")
	fs.Float64Var(&idealFlags.duration, "duration", 2, "trip hours")
	fs.IntVar(&idealFlags.capacity, "capacity", 1, "passengers count")
	discoverCmd.AddCommand(discoverAll, discoverTop, discoverIdeal)
	rootCmd.AddCommand(discoverCmd)
}
