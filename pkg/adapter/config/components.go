// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	filecrp "github.com/momeni/yacht-charter/pkg/adapter/db/file/credentialsrp"
	"github.com/momeni/yacht-charter/pkg/adapter/db/postgres"
	pgcrp "github.com/momeni/yacht-charter/pkg/adapter/db/postgres/credentialsrp"
	rediscrp "github.com/momeni/yacht-charter/pkg/adapter/db/redis/credentialsrp"
	"github.com/momeni/yacht-charter/pkg/adapter/media/cloudinary"
	"github.com/momeni/yacht-charter/pkg/adapter/remote/apiclient"
	"github.com/momeni/yacht-charter/pkg/adapter/restful/gin"
	"github.com/momeni/yacht-charter/pkg/core/repo"
	"github.com/momeni/yacht-charter/pkg/core/usecase/listinguc"
	"github.com/momeni/yacht-charter/pkg/core/usecase/mediauc"
)

// NewLogger creates a slog logger which writes to w based on the l
// settings.
func (l Log) NewLogger(w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// NewEngine instantiates a gin-gonic engine for the navigation shell.
// Requests are logged by the logger if the gin logger is enabled.
func (c *Config) NewEngine(logger *slog.Logger) *gin.Engine {
	return gin.NewEngine(gin.EngineOptions{
		Logger:       logger,
		RequestLog:   *c.Gin.Logger,
		Recovery:     *c.Gin.Recovery,
		AllowOrigins: c.Shell.AllowOrigins,
	})
}

// NewAPIClient instantiates the marketplace REST client. The tokens
// source provides the bearer token of each request.
func (c *Config) NewAPIClient(tokens apiclient.TokenSource) *apiclient.Client {
	return apiclient.New(c.API.URL, c.API.Timeout.Std(), tokens)
}

// NewMediaHost instantiates the image host adapter.
func (c *Config) NewMediaHost() *cloudinary.Host {
	cl := c.Cloudinary
	return cloudinary.New(
		cl.BaseURL, cl.Cloud, cl.Preset, cl.Folder, cl.Timeout.Std(),
	)
}

// NewMediaUseCase instantiates the media upload use case.
func (c *Config) NewMediaUseCase(h repo.MediaHost) (*mediauc.UseCase, error) {
	return mediauc.New(
		h,
		mediauc.WithMaxSize(*c.Media.MaxSize),
		mediauc.WithConcurrency(*c.Media.Concurrency),
	)
}

// NewListingUseCase instantiates the listing workflow use case.
func (c *Config) NewListingUseCase(l repo.Listings) (*listinguc.UseCase, error) {
	return listinguc.New(
		l,
		listinguc.WithMaxWorkflows(*c.Listing.MaxWorkflows),
		listinguc.WithIdleTimeout(c.Listing.IdleTimeout.Std()),
	)
}

// OpenCredentials instantiates the credential store which is selected
// by the store kind. The returned closer releases its resources and
// must be called when the store is not needed anymore.
func (c *Config) OpenCredentials(ctx context.Context) (
	repo.Credentials, func() error, error,
) {
	s := c.Store
	switch s.Kind {
	case StoreFile:
		return filecrp.New(s.File.Path), func() error { return nil }, nil
	case StoreRedis:
		rdb, err := rediscrp.Connect(ctx, rediscrp.Config{
			Addr:     s.Redis.Addr,
			Password: s.Redis.Password,
			DB:       s.Redis.DB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to redis: %w", err)
		}
		r := rediscrp.New(rdb, s.Profile, s.Redis.TTL.Std())
		return r, rdb.Close, nil
	case StorePostgres:
		p, err := postgres.NewPool(
			ctx, s.Postgres.URL, s.Postgres.SlowThreshold.Std(),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		r := pgcrp.New(p, s.Profile)
		if err = r.InitSchema(ctx); err != nil {
			_ = p.Close()
			return nil, nil, fmt.Errorf("creating credentials table: %w", err)
		}
		return r, p.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store kind %q", s.Kind)
	}
}
