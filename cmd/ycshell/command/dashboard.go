// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"log/slog"

	"github.com/momeni/yacht-charter/pkg/core/log"
	"github.com/momeni/yacht-charter/pkg/core/usecase/dashboarduc"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the owner dashboard",
	Long: `Show the owner dashboard, i.e., the owner yachts, earnings,
current rides, and previous rides. Sections which could not be loaded
are reported in the errors field.`,
	RunE: runE(func(ctx context.Context, e *env, _ []string) (any, error) {
		if _, err := e.uc.Gate.Require(ctx); err != nil {
			return nil, err
		}
		d, err := e.uc.Dashboard.Load(ctx)
		if err != nil {
			return nil, err
		}
		for s, err := range d.Errors {
			log.Warn(
				ctx, "dashboard section is not available",
				log.Err("err", err), slog.String("section", string(s)),
			)
		}
		return struct {
			*dashboarduc.Dashboard
			Errors map[dashboarduc.Section]string `json:"errors,omitempty"`
		}{d, d.ErrorMessages()}, nil
	}),
}

var rideCmd = &cobra.Command{
	Use:   "ride <id>",
	Short: "Show one previous ride",
	Args:  cobra.ExactArgs(1),
	RunE: runE(func(ctx context.Context, e *env, args []string) (any, error) {
		if _, err := e.uc.Gate.Require(ctx); err != nil {
			return nil, err
		}
		return e.uc.Dashboard.Ride(ctx, args[0])
	}),
}

func init() {
	dashboardCmd.AddCommand(rideCmd)
	rootCmd.AddCommand(dashboardCmd)
}
