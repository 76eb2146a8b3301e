// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package gin wraps the gin-gonic engine construction, so the shell
// middlewares are chosen in one place. Resources are registered on the
// engine by the routes sub-package.
package gin

import (
	"log/slog"
	"time"

	ginlogger "github.com/FabienMht/ginslog/logger"
	ginrecovery "github.com/FabienMht/ginslog/recovery"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/momeni/yacht-charter/pkg/core/log"
)

// HandlerFunc and Engine alias the gin-gonic types, so callers may
// avoid importing two packages named gin.
type (
	HandlerFunc = gin.HandlerFunc
	Engine      = gin.Engine
)

// RequestIDHeader carries the request id of each shell request.
const RequestIDHeader = "X-Request-ID"

// EngineOptions selects the middlewares of a new engine.
type EngineOptions struct {
	Logger       *slog.Logger // defaults to slog.Default()
	RequestLog   bool
	Recovery     bool
	AllowOrigins []string // CORS is disabled when empty
}

// New creates a bare engine with the given middlewares. Contexts of
// its handlers fall back to their request contexts, so the attributes
// which are attached by RequestID are visible to the use cases.
func New(middlewares ...HandlerFunc) *Engine {
	e := gin.New()
	e.ContextWithFallback = true
	e.Use(middlewares...)
	return e
}

// NewEngine creates an engine with the middlewares which are selected
// by o. Every request gets a request id in its response headers.
func NewEngine(o EngineOptions) *Engine {
	l := o.Logger
	if l == nil {
		l = slog.Default()
	}
	mws := make([]HandlerFunc, 0, 4)
	if o.Recovery {
		mws = append(mws, ginrecovery.New(l))
	}
	mws = append(mws, RequestID())
	if o.RequestLog {
		mws = append(mws, ginlogger.New(l))
	}
	if len(o.AllowOrigins) > 0 {
		mws = append(mws, CORS(o.AllowOrigins))
	}
	return New(mws...)
}

// RequestID keeps the request id of the incoming request or generates
// a new one, echoing it in the response headers. The id is attached to
// the request context, so all logs of that request carry it.
func RequestID() HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Set("request_id", id)
		c.Request = c.Request.WithContext(log.WithAttrs(
			c.Request.Context(), slog.String("request_id", id),
		))
		c.Next()
	}
}

// CORS allows the browser UI which is served from origins to call the
// shell APIs.
func CORS(origins []string) HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept", RequestIDHeader,
		},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        12 * time.Hour,
	})
}
