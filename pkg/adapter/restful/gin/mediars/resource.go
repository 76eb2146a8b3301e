// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package mediars realizes the media resource, allowing images to be
// uploaded into (or removed from) the draft of a listing workflow.
package mediars

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/yacht-charter/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/momeni/yacht-charter/pkg/core/usecase/listinguc"
	"github.com/momeni/yacht-charter/pkg/core/usecase/mediauc"
)

// FilesField is the multipart field which carries the uploaded files.
const FilesField = "files"

type resource struct {
	listings *listinguc.UseCase
	media    *mediauc.UseCase
}

// Register instantiates a resource adapting the media use case
// instance with the relevant REST APIs including:
//  1. POST request to /workflows/:wid/media with a multipart body
//     for uploading a batch of images, and
//  2. DELETE request to /workflows/:wid/media/:index for removing
//     one image reference from the draft.
func Register(
	r *gin.RouterGroup,
	listings *listinguc.UseCase,
	media *mediauc.UseCase,
) {
	rs := &resource{listings: listings, media: media}
	r.POST("workflows/:wid/media", rs.Upload)
	r.DELETE("workflows/:wid/media/:index", rs.Remove)
}

// UploadResp reports the upload outcome and the updated workflow.
type UploadResp struct {
	*mediauc.Result
	Workflow listinguc.Snapshot `json:"workflow"`
}

func (rs *resource) Upload(c *gin.Context) {
	wf, ok := rs.workflow(c)
	if !ok {
		return
	}
	files, ok := rs.DserUploadReq(c)
	if !ok {
		return
	}
	res, err := rs.media.Upload(c, wf, files)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, UploadResp{Result: res, Workflow: wf.Snapshot()})
}

func (rs *resource) Remove(c *gin.Context) {
	wf, ok := rs.workflow(c)
	if !ok {
		return
	}
	i, ok := serdser.Index(c, "index")
	if !ok {
		return
	}
	if err := rs.media.Remove(wf, i); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, wf.Snapshot())
}

func (rs *resource) workflow(c *gin.Context) (*listinguc.Workflow, bool) {
	id, ok := serdser.UUID(c, "wid")
	if !ok {
		return nil, false
	}
	wf, err := rs.listings.Workflow(id)
	if err != nil {
		serdser.SerErr(c, err)
		return nil, false
	}
	return wf, true
}

// DserUploadReq reads the files of a multipart upload request.
func (rs *resource) DserUploadReq(c *gin.Context) ([]model.MediaFile, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return nil, false
	}
	fhs := form.File[FilesField]
	if len(fhs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": "The " + FilesField + " field has no files.",
		})
		return nil, false
	}
	files := make([]model.MediaFile, 0, len(fhs))
	for _, fh := range fhs {
		files = append(files, mediaFile(fh))
	}
	return files, true
}

func mediaFile(fh *multipart.FileHeader) model.MediaFile {
	return model.MediaFile{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
