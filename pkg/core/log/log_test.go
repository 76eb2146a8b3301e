// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package log_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/goccy/go-json"
	"github.com/momeni/yacht-charter/pkg/core/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, level slog.Level) *bytes.Buffer {
	buf := &bytes.Buffer{}
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(
		buf, &slog.HandlerOptions{Level: level, AddSource: true},
	)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return buf
}

func TestContextAttrsAreLogged(t *testing.T) {
	buf := capture(t, slog.LevelInfo)
	ctx := log.WithAttrs(context.Background(), slog.String("request_id", "r1"))
	ctx = log.WithAttrs(ctx, slog.String("user", "u1"))
	log.Warn(ctx, "upload failed", log.Err("err", errors.New("boom")))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "upload failed", rec["msg"])
	assert.Equal(t, "r1", rec["request_id"])
	assert.Equal(t, "u1", rec["user"])
	assert.Equal(t, "boom", rec["err"])
	src, ok := rec["source"].(map[string]any)
	require.True(t, ok, "source is missing")
	assert.Contains(t, src["file"], "log_test.go")
}

func TestDisabledLevelIsSkipped(t *testing.T) {
	buf := capture(t, slog.LevelInfo)
	log.Debug(context.Background(), "hidden")
	assert.Zero(t, buf.Len())
}

func TestWithAttrsKeepsParent(t *testing.T) {
	parent := log.WithAttrs(context.Background(), slog.String("a", "1"))
	child := log.WithAttrs(parent, slog.String("b", "2"))
	assert.Len(t, log.ContextAttrs(parent), 1)
	assert.Len(t, log.ContextAttrs(child), 2)
	assert.Nil(t, log.ContextAttrs(context.Background()))
}

func TestErrNil(t *testing.T) {
	assert.Equal(t, "no-error", log.Err("err", nil).Value.String())
}
