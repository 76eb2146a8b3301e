// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"fmt"

	"github.com/momeni/yacht-charter/pkg/adapter/remote/authrp"
	"github.com/momeni/yacht-charter/pkg/adapter/remote/bookingsrp"
	"github.com/momeni/yacht-charter/pkg/adapter/remote/discoveryrp"
	"github.com/momeni/yacht-charter/pkg/adapter/remote/listingsrp"
	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/momeni/yacht-charter/pkg/core/repo"
	"github.com/momeni/yacht-charter/pkg/core/usecase/dashboarduc"
	"github.com/momeni/yacht-charter/pkg/core/usecase/discoveryuc"
	"github.com/momeni/yacht-charter/pkg/core/usecase/listinguc"
	"github.com/momeni/yacht-charter/pkg/core/usecase/mediauc"
	"github.com/momeni/yacht-charter/pkg/core/usecase/sessionuc"
)

// UseCases groups the use cases which share one session. All remote
// calls carry the token which is persisted in the credential store.
type UseCases struct {
	Gate      *sessionuc.Gate
	Session   *sessionuc.UseCase
	Listings  *listinguc.UseCase
	Media     *mediauc.UseCase
	Dashboard *dashboarduc.UseCase
	Discovery *discoveryuc.UseCase
}

// NewUseCases instantiates the remote repositories and all use cases
// based on the c settings. The store keeps the owner credential.
func (c *Config) NewUseCases(store repo.Credentials) (*UseCases, error) {
	gate := sessionuc.NewGate(store, model.RoleOwner)
	api := c.NewAPIClient(gate)
	listingsRepo := listingsrp.New(api)

	listings, err := c.NewListingUseCase(listingsRepo)
	if err != nil {
		return nil, fmt.Errorf("creating listing use case: %w", err)
	}
	media, err := c.NewMediaUseCase(c.NewMediaHost())
	if err != nil {
		return nil, fmt.Errorf("creating media use case: %w", err)
	}
	return &UseCases{
		Gate:      gate,
		Session:   sessionuc.New(authrp.New(api), gate),
		Listings:  listings,
		Media:     media,
		Dashboard: dashboarduc.New(listingsRepo, bookingsrp.New(api)),
		Discovery: discoveryuc.New(discoveryrp.New(api)),
	}, nil
}
