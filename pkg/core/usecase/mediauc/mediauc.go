// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package mediauc contains the media UseCase which uploads the images
// of a listing draft to the external image host. A batch of files is
// filtered (only images which are not larger than a maximum size are
// kept), the accepted files are uploaded concurrently, and their URLs
// are appended to the draft all together, in their original order.
// If any upload fails, no URL from that batch is appended.
package mediauc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/momeni/yacht-charter/pkg/core/cerr"
	"github.com/momeni/yacht-charter/pkg/core/log"
	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/momeni/yacht-charter/pkg/core/repo"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxSize is the default maximum accepted file size (5 MiB).
const DefaultMaxSize = 5 << 20

// ErrNotImage indicates that a file is not an image.
var ErrNotImage = errors.New("file is not an image")

// Target is the draft holder which receives the uploaded media.
// The listinguc.Workflow type implements it.
type Target interface {
	AddMedia(urls ...string) error
	RemoveMedia(i int) error
}

// UseCase represents the media use case.
type UseCase struct {
	host repo.MediaHost

	maxSize     int64
	concurrency int
}

// New instantiates a media use case which uploads files to host.
func New(host repo.MediaHost, opts ...Option) (*UseCase, error) {
	uc := &UseCase{host: host}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	if uc.maxSize == 0 {
		uc.maxSize = DefaultMaxSize
	}
	return uc, nil
}

// Result reports the outcome of one Upload call.
type Result struct {
	URLs    []string `json:"urls"`
	Skipped []string `json:"skipped,omitempty"`

	// Warning is set iff some files were skipped. It is a notice
	// for the user, not an error.
	Warning string `json:"warning,omitempty"`
}

// Upload filters the files batch, uploads the accepted files, and
// appends their URLs to t in the original order of the batch.
// When some files are skipped, the returned Result carries a Warning.
// If any accepted file fails to upload, a *cerr.UploadError is
// returned and t is left unchanged. The image host does not support
// cancellation of uploaded assets, so the already uploaded files of
// a failed batch stay on the host.
func (uc *UseCase) Upload(ctx context.Context, t Target, files []model.MediaFile) (*Result, error) {
	res := &Result{}
	accepted := make([]model.MediaFile, 0, len(files))
	for _, f := range files {
		if err := uc.accept(f); err != nil {
			log.Debug(
				ctx, "skipping media file",
				slog.String("name", f.Name), log.Err("reason", err),
			)
			res.Skipped = append(res.Skipped, f.Name)
			continue
		}
		accepted = append(accepted, f)
	}
	if len(res.Skipped) > 0 {
		res.Warning = fmt.Sprintf(
			"Some files were skipped. Please only upload images under %s.",
			sizeLabel(uc.maxSize),
		)
	}
	if len(accepted) == 0 {
		return res, nil
	}
	urls := make([]string, len(accepted))
	g, gctx := errgroup.WithContext(ctx)
	if uc.concurrency > 0 {
		g.SetLimit(uc.concurrency)
	}
	for i, f := range accepted {
		i, f := i, f
		g.Go(func() error {
			u, err := uc.host.Upload(gctx, f)
			if err != nil {
				return &cerr.UploadError{File: f.Name, Err: err}
			}
			urls[i] = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Warn(
			ctx, "media upload failed",
			log.Count("files", len(accepted)), log.Err("err", err),
		)
		return nil, err
	}
	if err := t.AddMedia(urls...); err != nil {
		return nil, fmt.Errorf("adding media: %w", err)
	}
	res.URLs = urls
	log.Info(
		ctx, "media uploaded",
		log.Count("uploaded", len(urls)),
		log.Count("skipped", len(res.Skipped)),
	)
	return res, nil
}

// Remove drops the i-th image reference from t. The hosted asset is
// not deleted.
func (uc *UseCase) Remove(t Target, i int) error {
	return t.RemoveMedia(i)
}

func (uc *UseCase) accept(f model.MediaFile) error {
	if f.Size > uc.maxSize {
		return fmt.Errorf("size %d exceeds %d bytes", f.Size, uc.maxSize)
	}
	mt := f.ContentType
	if sniffed, err := sniff(f); err == nil {
		mt = sniffed
	}
	if !strings.HasPrefix(mt, "image/") {
		return fmt.Errorf("%q: %w", mt, ErrNotImage)
	}
	return nil
}

// sniff detects the media type of f from its leading bytes.
func sniff(f model.MediaFile) (string, error) {
	if f.Open == nil {
		return "", errors.New("no content")
	}
	r, err := f.Open()
	if err != nil {
		return "", err
	}
	defer r.Close()
	mt, err := mimetype.DetectReader(io.LimitReader(r, 3072))
	if err != nil {
		return "", err
	}
	return mt.String(), nil
}

func sizeLabel(n int64) string {
	if n >= 1<<20 && n%(1<<20) == 0 {
		return fmt.Sprintf("%dMB", n>>20)
	}
	return fmt.Sprintf("%d bytes", n)
}
