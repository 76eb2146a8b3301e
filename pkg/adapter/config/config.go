// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config is an adapter which accepts yaml formatted config
// files from its users and allows the ycshell to instantiate different
// components, from the adapter or use cases layers, using those loaded
// configuration settings.
// The parsed and validated configurations are passed to their ultimate
// components as a series of individual params (for the mandatory
// items) and a series of functional options (for the optional items).
//
// Settings are read from a yaml file, then selected items may be
// overridden by environment variables (possibly loaded from a .env
// file in the working directory), and at last they are validated and
// normalized by filling the missing items with their defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/momeni/yacht-charter/pkg/adapter/config/settings"
	"gopkg.in/yaml.v3"
)

// These constants list the supported credential store kinds.
const (
	StoreFile     = "file"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// Environment variables which override the configuration file.
const (
	EnvAPIURL            = "YC_API_URL"
	EnvCloudinaryBaseURL = "YC_CLOUDINARY_URL"
	EnvCloudinaryCloud   = "YC_CLOUDINARY_CLOUD"
	EnvCloudinaryPreset  = "YC_CLOUDINARY_PRESET"
	EnvCloudinaryFolder  = "YC_CLOUDINARY_FOLDER"
	EnvStoreKind         = "YC_STORE_KIND"
	EnvRedisAddr         = "YC_REDIS_ADDR"
	EnvRedisPassword     = "YC_REDIS_PASSWORD"
	EnvDatabaseURL       = "YC_DATABASE_URL"
	EnvShellAddr         = "YC_SHELL_ADDR"
	EnvLogLevel          = "YC_LOG_LEVEL"
)

// Config contains all settings which are required by different parts
// of the project, such as adapters or use cases. It is implemented with
// primitive fields or locally defined structs, so the configuration
// file format is kept intact while other layers change freely.
type Config struct {
	API        API        `yaml:"api"`
	Cloudinary Cloudinary `yaml:"cloudinary"`
	Media      Media      `yaml:"media,omitempty"`
	Listing    Listing    `yaml:"listing,omitempty"`
	Store      Store      `yaml:"store"`
	Shell      Shell      `yaml:"shell"`
	Gin        Gin        `yaml:"gin"`
	Log        Log        `yaml:"log,omitempty"`
}

// API contains the marketplace backend settings.
type API struct {
	URL     string             `yaml:"url" validate:"required,url"`
	Timeout *settings.Duration `yaml:"timeout,omitempty"`
}

// Cloudinary contains the image host settings. Uploads are unsigned,
// so the Preset must name an unsigned upload preset.
type Cloudinary struct {
	BaseURL string             `yaml:"base-url,omitempty" validate:"omitempty,url"`
	Cloud   string             `yaml:"cloud" validate:"required"`
	Preset  string             `yaml:"preset" validate:"required"`
	Folder  string             `yaml:"folder,omitempty"`
	Timeout *settings.Duration `yaml:"timeout,omitempty"`
}

// Media contains the media upload use case settings.
type Media struct {
	MaxSize     *int64 `yaml:"max-size,omitempty"` // bytes per file
	Concurrency *int   `yaml:"concurrency,omitempty"`
}

// Listing contains the listing workflow use case settings.
type Listing struct {
	MaxWorkflows *int               `yaml:"max-workflows,omitempty"`
	IdleTimeout  *settings.Duration `yaml:"idle-timeout,omitempty"`
}

// Store selects and configures the durable credential store.
type Store struct {
	Kind     string        `yaml:"kind" validate:"omitempty,oneof=file redis postgres"`
	Profile  string        `yaml:"profile,omitempty" validate:"omitempty,alphanum"`
	File     FileStore     `yaml:"file,omitempty"`
	Redis    RedisStore    `yaml:"redis,omitempty"`
	Postgres PostgresStore `yaml:"postgres,omitempty"`
}

// FileStore keeps the credential in a local yaml file.
type FileStore struct {
	Path string `yaml:"path,omitempty"`
}

// RedisStore keeps the credential in a Redis hash.
type RedisStore struct {
	Addr     string             `yaml:"addr,omitempty" validate:"omitempty,hostname_port"`
	Password string             `yaml:"password,omitempty"`
	DB       int                `yaml:"db,omitempty" validate:"gte=0"`
	TTL      *settings.Duration `yaml:"ttl,omitempty"`
}

// PostgresStore keeps the credential in a PostgreSQL table.
type PostgresStore struct {
	URL           string             `yaml:"url,omitempty" validate:"omitempty,url"`
	SlowThreshold *settings.Duration `yaml:"slow-threshold,omitempty"`
}

// Shell contains the navigation shell HTTP server settings.
type Shell struct {
	Addr         string   `yaml:"addr" validate:"omitempty,hostname_port"`
	AllowOrigins []string `yaml:"allow-origins,omitempty" validate:"dive,url"`
}

// Gin contains the gin-gonic related configuration settings.
// Fields are defined as pointers, so it is possible to detect if they
// are or are not initialized.
type Gin struct {
	Logger   *bool `yaml:"logger"`   // Whether to log the requests
	Recovery *bool `yaml:"recovery"` // Whether to recover from panics
}

// Log contains the structured logging settings.
type Log struct {
	Level  string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format,omitempty" validate:"omitempty,oneof=text json"`
}

// Default values of the optional settings.
const (
	DefaultAPITimeout        = 15 * time.Second
	DefaultCloudinaryTimeout = time.Minute
	DefaultMaxSize           = 5 << 20
	DefaultConcurrency       = 4
	DefaultMaxWorkflows      = 64
	DefaultIdleTimeout       = 2 * time.Hour
	DefaultProfile           = "default"
	DefaultShellAddr         = "127.0.0.1:8080"
	DefaultSlowThreshold     = 200 * time.Millisecond
)

// Acceptable ranges of the bounded settings.
const (
	minMaxSize      int64 = 1
	maxMaxSize      int64 = 20 << 20
	minConcurrency        = 1
	maxConcurrency        = 16
	minMaxWorkflows       = 1
	maxMaxWorkflows       = 1024
	minIdleTimeout        = settings.Duration(time.Minute)
	maxIdleTimeout        = settings.Duration(7 * 24 * time.Hour)
)

var (
	// ErrMissingRedisAddr indicates that the redis store was selected
	// without an address.
	ErrMissingRedisAddr = errors.New("redis store requires store.redis.addr")

	// ErrMissingDatabaseURL indicates that the postgres store was
	// selected without a connection URL.
	ErrMissingDatabaseURL = errors.New(
		"postgres store requires store.postgres.url",
	)
)

// Load function loads, overrides, validates, and normalizes the
// configuration file and returns its settings as a Config instance.
// A .env file in the working directory is loaded (if it exists) into
// the process environment beforehand, without replacing the existing
// environment variables.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	return c, nil
}

// Parse unmarshals the data byte slice as a Config instance, applies
// the environment variable overrides, and validates and normalizes it.
// Extra items in the data are ignored.
func Parse(data []byte) (*Config, error) {
	n := &yaml.Node{}
	if err := yaml.Unmarshal(data, n); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if l := len(n.Content); l != 1 {
		return nil, fmt.Errorf(
			"found %d children nodes, instead of 1 mapping child", l,
		)
	}
	c := &Config{}
	if err := n.Decode(c); err != nil {
		return nil, fmt.Errorf("decoding yaml node: %w", err)
	}
	c.Override(os.Getenv)
	if err := c.ValidateAndNormalize(); err != nil {
		return nil, fmt.Errorf("validating configs: %w", err)
	}
	return c, nil
}

// Override replaces the settings which have a non-empty environment
// variable, as reported by the getenv function.
func (c *Config) Override(getenv func(string) string) {
	settings.OverwriteNonEmpty(&c.API.URL, getenv(EnvAPIURL))
	settings.OverwriteNonEmpty(&c.Cloudinary.BaseURL, getenv(EnvCloudinaryBaseURL))
	settings.OverwriteNonEmpty(&c.Cloudinary.Cloud, getenv(EnvCloudinaryCloud))
	settings.OverwriteNonEmpty(&c.Cloudinary.Preset, getenv(EnvCloudinaryPreset))
	settings.OverwriteNonEmpty(&c.Cloudinary.Folder, getenv(EnvCloudinaryFolder))
	settings.OverwriteNonEmpty(&c.Store.Kind, getenv(EnvStoreKind))
	settings.OverwriteNonEmpty(&c.Store.Redis.Addr, getenv(EnvRedisAddr))
	settings.OverwriteNonEmpty(&c.Store.Redis.Password, getenv(EnvRedisPassword))
	settings.OverwriteNonEmpty(&c.Store.Postgres.URL, getenv(EnvDatabaseURL))
	settings.OverwriteNonEmpty(&c.Shell.Addr, getenv(EnvShellAddr))
	settings.OverwriteNonEmpty(&c.Log.Level, getenv(EnvLogLevel))
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateAndNormalize validates the configuration settings and
// returns an error if they were not acceptable. It also replaces the
// missing settings with their default values.
func (c *Config) ValidateAndNormalize() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	settings.OverwriteNil(&c.API.Timeout, settings.Duration(DefaultAPITimeout))
	settings.OverwriteNil(
		&c.Cloudinary.Timeout, settings.Duration(DefaultCloudinaryTimeout),
	)
	settings.OverwriteNil(&c.Media.MaxSize, DefaultMaxSize)
	settings.OverwriteNil(&c.Media.Concurrency, DefaultConcurrency)
	settings.OverwriteNil(&c.Listing.MaxWorkflows, DefaultMaxWorkflows)
	settings.OverwriteNil(
		&c.Listing.IdleTimeout, settings.Duration(DefaultIdleTimeout),
	)
	if err := settings.VerifyRange(
		"media.max-size", &c.Media.MaxSize, minMaxSize, maxMaxSize,
	); err != nil {
		return err
	}
	if err := settings.VerifyRange(
		"media.concurrency", &c.Media.Concurrency,
		minConcurrency, maxConcurrency,
	); err != nil {
		return err
	}
	if err := settings.VerifyRange(
		"listing.max-workflows", &c.Listing.MaxWorkflows,
		minMaxWorkflows, maxMaxWorkflows,
	); err != nil {
		return err
	}
	if err := settings.VerifyRange(
		"listing.idle-timeout", &c.Listing.IdleTimeout,
		minIdleTimeout, maxIdleTimeout,
	); err != nil {
		return err
	}
	settings.Nil2Zero(&c.Gin.Logger)
	settings.OverwriteNil(&c.Gin.Recovery, true)
	if c.Shell.Addr == "" {
		c.Shell.Addr = DefaultShellAddr
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	return c.Store.validateAndNormalize()
}

func (s *Store) validateAndNormalize() error {
	if s.Kind == "" {
		s.Kind = StoreFile
	}
	if s.Profile == "" {
		s.Profile = DefaultProfile
	}
	switch s.Kind {
	case StoreFile:
		if s.File.Path == "" {
			dir, err := os.UserConfigDir()
			if err != nil {
				return fmt.Errorf("finding user config dir: %w", err)
			}
			s.File.Path = filepath.Join(
				dir, "ycshell", s.Profile+".credential.yaml",
			)
		}
	case StoreRedis:
		if s.Redis.Addr == "" {
			return ErrMissingRedisAddr
		}
		settings.Nil2Zero(&s.Redis.TTL)
	case StorePostgres:
		if s.Postgres.URL == "" {
			return ErrMissingDatabaseURL
		}
		settings.OverwriteNil(
			&s.Postgres.SlowThreshold,
			settings.Duration(DefaultSlowThreshold),
		)
	}
	return nil
}
