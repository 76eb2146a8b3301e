// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package credentialsrp is the Redis adapter of the credentials
// repository. The credential of a profile is kept in one hash, so its
// token and user record are written and read together.
package credentialsrp

import (
	"context"
	"fmt"
	"time"

	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/momeni/yacht-charter/pkg/core/repo"
	"github.com/redis/go-redis/v9"
)

const (
	fieldToken = "token"
	fieldUser  = "user"
)

// Config holds the Redis connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// Connect creates a Redis client and pings the server.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	const op = "redis.Connect"
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctxPing, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if _, err := client.Ping(ctxPing).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return client, nil
}

// Repo keeps the credential of one profile in Redis.
type Repo struct {
	rdb *redis.Client
	key string
	ttl time.Duration
}

// New instantiates a credentials Repo for the profile profile. A
// positive ttl expires the stored credential after that duration.
func New(rdb *redis.Client, profile string, ttl time.Duration) *Repo {
	return &Repo{rdb: rdb, key: Key(profile), ttl: ttl}
}

// Key returns the hash key of the profile credential.
func Key(profile string) string {
	return "ycshell:credential:" + profile
}

var _ repo.Credentials = (*Repo)(nil)

// Load implements repo.Credentials.Load.
func (r *Repo) Load(ctx context.Context) (*model.Credential, error) {
	m, err := r.rdb.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall %q: %w", r.key, err)
	}
	if len(m) == 0 {
		return nil, nil
	}
	c := &model.Credential{Token: m[fieldToken]}
	if u := m[fieldUser]; u != "" {
		c.User = []byte(u)
	}
	return c, nil
}

// Save implements repo.Credentials.Save.
func (r *Repo) Save(ctx context.Context, c model.Credential) error {
	_, err := r.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, r.key)
		p.HSet(ctx, r.key, fieldToken, c.Token, fieldUser, string(c.User))
		if r.ttl > 0 {
			p.Expire(ctx, r.key, r.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("saving %q: %w", r.key, err)
	}
	return nil
}

// Clear implements repo.Credentials.Clear.
func (r *Repo) Clear(ctx context.Context) error {
	if err := r.rdb.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("del %q: %w", r.key, err)
	}
	return nil
}
