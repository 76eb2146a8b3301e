// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cloudinary implements the repo.MediaHost port over the
// Cloudinary unsigned upload API. Uploaded assets are never deleted
// since unsigned presets may not destroy them.
package cloudinary

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/goccy/go-json"
	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/momeni/yacht-charter/pkg/core/repo"
)

// DefaultBaseURL is the Cloudinary API base URL.
const DefaultBaseURL = "https://api.cloudinary.com/v1_1"

// ErrNoURL indicates that an upload response carried no asset URL.
var ErrNoURL = errors.New("upload response has no url")

// Host uploads images to one Cloudinary cloud.
type Host struct {
	endpoint   string
	preset     string
	folder     string
	httpClient *http.Client
}

// New instantiates a Host which uploads to the cloud cloud using the
// preset unsigned upload preset. Assets are put in folder, if it is
// not empty. An empty baseURL selects the DefaultBaseURL.
func New(baseURL, cloud, preset, folder string, timeout time.Duration) *Host {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Host{
		endpoint: fmt.Sprintf(
			"%s/%s/image/upload", strings.TrimRight(baseURL, "/"), cloud,
		),
		preset:     preset,
		folder:     folder,
		httpClient: &http.Client{Timeout: timeout},
	}
}

var _ repo.MediaHost = (*Host)(nil)

// Upload implements repo.MediaHost.Upload.
func (h *Host) Upload(ctx context.Context, f model.MediaFile) (string, error) {
	if f.Open == nil {
		return "", fmt.Errorf("opening %q: no content", f.Name)
	}
	r, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("opening %q: %w", f.Name, err)
	}
	defer r.Close()
	content, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", f.Name, err)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("upload_preset", h.preset); err != nil {
		return "", err
	}
	if h.folder != "" {
		if err := mw.WriteField("folder", h.folder); err != nil {
			return "", err
		}
	}
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(
		`form-data; name="file"; filename=%q`, f.Name,
	))
	hdr.Set("Content-Type", mimetype.Detect(content).String())
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(content); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := h.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("uploading %q: %w", f.Name, err)
	}
	defer resp.Body.Close()

	var res struct {
		SecureURL string `json:"secure_url"`
		URL       string `json:"url"`
		Error     struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", fmt.Errorf("decoding upload response (%d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("upload rejected (%d): %s", resp.StatusCode, res.Error.Message)
	}
	switch {
	case res.SecureURL != "":
		return res.SecureURL, nil
	case res.URL != "":
		return res.URL, nil
	default:
		return "", ErrNoURL
	}
}
