// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package apiclient provides the HTTP client of the remote marketplace
// REST API. It is shared by all gateway adapters under the remote
// package, so they agree on request encoding, authentication, request
// ids, and the conversion of non-success responses to errors.
package apiclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/momeni/yacht-charter/pkg/core/cerr"
	"github.com/momeni/yacht-charter/pkg/core/log"
)

// RequestIDHeader carries a fresh id for every outgoing request.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody bounds the bytes which are read from an error response.
const maxErrorBody = 64 << 10

// TokenSource provides the auth token of the current session. An empty
// token means that the request must be sent anonymously.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client calls the remote marketplace API. Calls are single shot and
// are never retried.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// New instantiates a Client for the baseURL API. The tokens may be nil
// if no call needs authentication.
func New(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
	}
}

// WithHTTPClient returns a copy of c which uses hc for sending requests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	cc := *c
	cc.httpClient = hc
	return &cc
}

// BaseURL returns the API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends a method request to path with the in body (if non-nil) and
// decodes the response body into out (if non-nil). The op names the
// gateway operation in errors. Non-success responses are returned as
// *cerr.RemoteError values which carry the backend message.
func (c *Client) Do(ctx context.Context, op, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: marshaling request: %w", op, err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: creating request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rid := uuid.NewString()
	req.Header.Set(RequestIDHeader, rid)
	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("%s: reading token: %w", op, err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &cerr.RemoteError{Op: op, Err: err}
	}
	defer resp.Body.Close()
	log.Debug(
		ctx, "remote call",
		slog.String("op", op),
		slog.String("request_id", rid),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &cerr.RemoteError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.Body),
		}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return &cerr.RemoteError{
			Op: op, StatusCode: resp.StatusCode,
			Err: fmt.Errorf("decoding response: %w", err),
		}
	}
	return nil
}

// errorMessage extracts the backend message of an error response.
// Both of {"message": "..."} and {"error": "..."} forms are accepted.
func errorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(data) == 0 {
		return ""
	}
	var e struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &e); err != nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// Unwrap returns the value of the key member if raw is a JSON object
// which has that member, and raw itself otherwise. It lets callers
// accept both of the enveloped and the bare response forms.
func Unwrap(raw json.RawMessage, key string) json.RawMessage {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return raw
	}
	if v, ok := m[key]; ok {
		return v
	}
	return raw
}
