// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"

	"github.com/spf13/cobra"
)

var yachtCmd = &cobra.Command{
	Use:   "yacht",
	Short: "Owner listing actions",
	Long: `Owner listing actions for the signed in owner. Listings are
created and edited through the served shell, since their workflow
spans several requests.`,
}

var yachtList = &cobra.Command{
	Use:   "list",
	Short: "List the yachts of the signed in owner",
	RunE: runE(func(ctx context.Context, e *env, _ []string) (any, error) {
		if _, err := e.uc.Gate.Require(ctx); err != nil {
			return nil, err
		}
		return e.uc.Listings.Mine(ctx)
	}),
}

var yachtShow = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one listing",
	Args:  cobra.ExactArgs(1),
	RunE: runE(func(ctx context.Context, e *env, args []string) (any, error) {
		if _, err := e.uc.Gate.Require(ctx); err != nil {
			return nil, err
		}
		return e.uc.Listings.Fetch(ctx, args[0])
	}),
}

var deleteConfirmed bool

var yachtDelete = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one listing permanently",
	Long: `Delete one listing permanently. The deletion is refused
unless it is confirmed by the --yes flag.`,
	Args: cobra.ExactArgs(1),
	RunE: runE(func(ctx context.Context, e *env, args []string) (any, error) {
		if _, err := e.uc.Gate.Require(ctx); err != nil {
			return nil, err
		}
		return nil, e.uc.Listings.Delete(ctx, args[0], deleteConfirmed)
	}),
}

func init() {
	yachtDelete.Flags().BoolVarP(
		&deleteConfirmed, "yes", "y", false, "confirm the deletion",
	)
	yachtCmd.AddCommand(yachtList, yachtShow, yachtDelete)
	rootCmd.AddCommand(yachtCmd)
}
