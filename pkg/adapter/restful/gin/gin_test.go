// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gin_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/momeni/yacht-charter/pkg/adapter/config"
	"github.com/momeni/yacht-charter/pkg/adapter/restful/gin"
	"github.com/momeni/yacht-charter/pkg/adapter/restful/gin/routes"
	"github.com/stretchr/testify/suite"
)

// backend fakes the marketplace API and the image host.
type backend struct {
	mu      sync.Mutex
	created []map[string]any
	deleted []string
}

func (b *backend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/signin", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"token": "tok",
			"user": map[string]any{
				"id": "u1", "name": "Ann", "email": "ann@example.com",
				"type": "owner",
			},
		})
	})
	mux.HandleFunc("/user/logout", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{})
	})
	mux.HandleFunc("/owner/create", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"message": "Unauthorized",
			})
			return
		}
		p := map[string]any{}
		_ = json.NewDecoder(r.Body).Decode(&p)
		b.mu.Lock()
		b.created = append(b.created, p)
		b.mu.Unlock()
		writeJSON(w, http.StatusCreated, map[string]any{
			"yacht": map[string]any{"_id": "Y1"},
		})
	})
	mux.HandleFunc("/owner/me/yatchs", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"yachts": []any{map[string]any{"_id": "Y1", "name": "Sea Breeze"}},
		})
	})
	mux.HandleFunc("/owner/delete/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.deleted = append(b.deleted, filepath.Base(r.URL.Path))
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{})
	})
	mux.HandleFunc("/demo/image/upload", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"secure_url": "https://img.example.com/boat.png",
		})
	})
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type ShellTestSuite struct {
	suite.Suite

	Ctx     context.Context
	Backend *backend
	Server  *httptest.Server
	Gin     *gin.Engine
}

func TestShellTestSuite(t *testing.T) {
	suite.Run(t, &ShellTestSuite{Ctx: context.Background()})
}

func (sts *ShellTestSuite) SetupTest() {
	sts.Backend = &backend{}
	sts.Server = httptest.NewServer(sts.Backend.handler())
	c, err := config.Parse([]byte(fmt.Sprintf(`
api:
  url: %[1]s
cloudinary:
  base-url: %[1]s
  cloud: demo
  preset: yachts
store:
  kind: file
  file:
    path: %[2]s
`, sts.Server.URL, filepath.Join(sts.T().TempDir(), "cred.yaml"))))
	sts.Require().NoError(err, "failed to parse config")
	store, closer, err := c.OpenCredentials(sts.Ctx)
	sts.Require().NoError(err, "failed to open credentials store")
	sts.T().Cleanup(func() { _ = closer() })
	uc, err := c.NewUseCases(store)
	sts.Require().NoError(err, "failed to create use cases")
	sts.Gin = c.NewEngine(slog.New(slog.NewTextHandler(io.Discard, nil)))
	routes.Register(sts.Gin, uc)
}

func (sts *ShellTestSuite) TearDownTest() {
	sts.Server.Close()
}

func (sts *ShellTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		sts.Require().NoError(err)
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, routes.Prefix+path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	sts.Gin.ServeHTTP(w, req)
	return w
}

func (sts *ShellTestSuite) decode(w *httptest.ResponseRecorder, v any) {
	sts.Require().NoError(json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func (sts *ShellTestSuite) login() {
	w := sts.do(http.MethodPost, "/session/login", map[string]string{
		"email": "ann@example.com", "password": "secret",
	})
	sts.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var s struct {
		State string `json:"state"`
	}
	sts.decode(w, &s)
	sts.Require().Equal("authenticated", s.State)
}

type snapshot struct {
	ID     string            `json:"id"`
	Step   string            `json:"step"`
	Errors map[string]string `json:"errors"`
	Draft  struct {
		Name   string   `json:"name"`
		Images []string `json:"images"`
	} `json:"draft"`
}

func (sts *ShellTestSuite) begin() snapshot {
	w := sts.do(http.MethodPost, "/workflows", nil)
	sts.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var s snapshot
	sts.decode(w, &s)
	sts.Require().Equal("form", s.Step)
	return s
}

func (sts *ShellTestSuite) patch(id string, body map[string]any) snapshot {
	w := sts.do(http.MethodPatch, "/workflows/"+id, body)
	sts.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var s snapshot
	sts.decode(w, &s)
	return s
}

func (sts *ShellTestSuite) TestOwnerRoutesRequireSession() {
	w := sts.do(http.MethodGet, "/yachts", nil)
	sts.Equal(http.StatusUnauthorized, w.Code)
	var body struct {
		Redirect string `json:"redirect"`
	}
	sts.decode(w, &body)
	sts.Equal("/login", body.Redirect)
	sts.NotEmpty(w.Header().Get(gin.RequestIDHeader))
}

func (sts *ShellTestSuite) TestLoginAndLogout() {
	sts.login()
	w := sts.do(http.MethodGet, "/yachts", nil)
	sts.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var list struct {
		Yachts []struct {
			ID string `json:"_id"`
		} `json:"yachts"`
	}
	sts.decode(w, &list)
	sts.Require().Len(list.Yachts, 1)
	sts.Equal("Y1", list.Yachts[0].ID)

	w = sts.do(http.MethodPost, "/session/logout", nil)
	sts.Require().Equal(http.StatusOK, w.Code)
	w = sts.do(http.MethodGet, "/yachts", nil)
	sts.Equal(http.StatusUnauthorized, w.Code)
}

func (sts *ShellTestSuite) TestLoginRequiresFields() {
	w := sts.do(http.MethodPost, "/session/login", map[string]string{})
	sts.Equal(http.StatusBadRequest, w.Code)
	var body struct {
		Fields map[string]string `json:"fields"`
	}
	sts.decode(w, &body)
	sts.Equal("Email is required", body.Fields["email"])
	sts.Equal("Password is required", body.Fields["password"])
}

func (sts *ShellTestSuite) fill(id string) snapshot {
	for field, value := range map[string]string{
		"name":        "Sea Breeze",
		"description": "A calm ride",
		"YachtType":   "luxury",
		"capacity":    "8",
		"mnfyear":     "2015",
		"crewCount":   "2",
	} {
		sts.patch(id, map[string]any{
			"op": "field", "field": field, "value": value,
		})
	}
	sts.patch(id, map[string]any{"op": "location", "value": "panjim"})
	return sts.patch(id, map[string]any{
		"op": "price", "mode": "sailing", "band": "peakTime", "rate": 5000,
	})
}

func (sts *ShellTestSuite) uploadPNG(id, name string) *httptest.ResponseRecorder {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("files", name)
	sts.Require().NoError(err)
	_, err = fw.Write([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))
	sts.Require().NoError(err)
	sts.Require().NoError(mw.Close())
	req := httptest.NewRequest(
		http.MethodPost, routes.Prefix+"/workflows/"+id+"/media", body,
	)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	sts.Gin.ServeHTTP(w, req)
	return w
}

func (sts *ShellTestSuite) TestCreateListingFlow() {
	sts.login()
	s := sts.fill(sts.begin().ID)
	sts.Equal("Sea Breeze", s.Draft.Name)

	w := sts.do(http.MethodPost, "/workflows/"+s.ID+"/submit", nil)
	sts.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var review struct {
		Payload map[string]any `json:"payload"`
		Edit    bool           `json:"edit"`
	}
	sts.decode(w, &review)
	sts.False(review.Edit)
	sts.Equal("panjim", review.Payload["pickupat"])
	sts.EqualValues(8, review.Payload["capacity"])

	w = sts.do(http.MethodPatch, "/workflows/"+s.ID, map[string]any{
		"op": "field", "field": "name", "value": "Other",
	})
	sts.Equal(http.StatusConflict, w.Code, "review step is not editable")

	w = sts.do(http.MethodPost, "/workflows/"+s.ID+"/confirm", nil)
	sts.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var done struct {
		ID       string   `json:"id"`
		Workflow snapshot `json:"workflow"`
	}
	sts.decode(w, &done)
	sts.Equal("Y1", done.ID)
	sts.Equal("done", done.Workflow.Step)
	sts.Require().Len(sts.Backend.created, 1)
	sts.Equal("Sea Breeze", sts.Backend.created[0]["name"])
	sts.Equal("luxury", sts.Backend.created[0]["YachtType"])
	sts.Len(sts.Backend.created[0]["crews"], 2)

	w = sts.do(http.MethodGet, "/workflows/"+s.ID, nil)
	sts.Equal(http.StatusNotFound, w.Code)
}

func (sts *ShellTestSuite) TestSubmitReportsAllFields() {
	sts.login()
	s := sts.begin()
	w := sts.do(http.MethodPost, "/workflows/"+s.ID+"/submit", nil)
	sts.Require().Equal(http.StatusBadRequest, w.Code)
	var body struct {
		Fields map[string]string `json:"fields"`
	}
	sts.decode(w, &body)
	for _, f := range []string{
		"name", "capacity", "mnfyear", "location", "YachtType", "price",
		"description",
	} {
		sts.Contains(body.Fields, f)
	}
	w = sts.do(http.MethodGet, "/workflows/"+s.ID, nil)
	sts.decode(w, &s)
	sts.Equal("form", s.Step)
	sts.Equal("Yacht name is required", s.Errors["name"])
}

func (sts *ShellTestSuite) TestUpdateDraftRejectsBadRequests() {
	sts.login()
	s := sts.begin()
	w := sts.do(http.MethodPatch, "/workflows/"+s.ID, map[string]any{
		"op": "field", "field": "name",
	})
	sts.Equal(http.StatusBadRequest, w.Code)
	w = sts.do(http.MethodPatch, "/workflows/"+s.ID, map[string]any{
		"op": "location", "value": "atlantis",
	})
	sts.Equal(http.StatusBadRequest, w.Code)
	w = sts.do(http.MethodPatch, "/workflows/"+s.ID, map[string]any{
		"op": "teleport",
	})
	sts.Equal(http.StatusBadRequest, w.Code)
	w = sts.do(http.MethodPatch, "/workflows/not-a-uuid", map[string]any{
		"op": "addons",
	})
	sts.Equal(http.StatusBadRequest, w.Code)
}

func (sts *ShellTestSuite) TestUploadMedia() {
	sts.login()
	s := sts.begin()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("files", "boat.png")
	sts.Require().NoError(err)
	_, err = fw.Write([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))
	sts.Require().NoError(err)
	fw, err = mw.CreateFormFile("files", "notes.txt")
	sts.Require().NoError(err)
	_, err = fw.Write([]byte("just some text"))
	sts.Require().NoError(err)
	sts.Require().NoError(mw.Close())

	req := httptest.NewRequest(
		http.MethodPost, routes.Prefix+"/workflows/"+s.ID+"/media", body,
	)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	sts.Gin.ServeHTTP(w, req)
	sts.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var res struct {
		URLs     []string `json:"urls"`
		Skipped  []string `json:"skipped"`
		Warning  string   `json:"warning"`
		Workflow snapshot `json:"workflow"`
	}
	sts.decode(w, &res)
	sts.Equal([]string{"https://img.example.com/boat.png"}, res.URLs)
	sts.Equal([]string{"notes.txt"}, res.Skipped)
	sts.NotEmpty(res.Warning)
	sts.Equal(res.URLs, res.Workflow.Draft.Images)

	w = sts.do(http.MethodDelete, "/workflows/"+s.ID+"/media/0", nil)
	sts.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	sts.decode(w, &s)
	sts.Empty(s.Draft.Images)
}

func (sts *ShellTestSuite) TestUploadDuringReviewIsRejected() {
	sts.login()
	s := sts.fill(sts.begin().ID)
	w := sts.uploadPNG(s.ID, "early.png")
	sts.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	w = sts.do(http.MethodPost, "/workflows/"+s.ID+"/submit", nil)
	sts.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = sts.uploadPNG(s.ID, "late.png")
	sts.Equal(http.StatusConflict, w.Code, w.Body.String())

	w = sts.do(http.MethodPost, "/workflows/"+s.ID+"/confirm", nil)
	sts.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	sts.Require().Len(sts.Backend.created, 1)
	sts.Equal(
		[]any{"https://img.example.com/early.png"},
		sts.Backend.created[0]["images"],
	)
}

func (sts *ShellTestSuite) TestDeleteRequiresConfirmation() {
	sts.login()
	w := sts.do(http.MethodDelete, "/yachts/Y1", nil)
	sts.Equal(http.StatusBadRequest, w.Code)
	sts.Empty(sts.Backend.deleted)
	w = sts.do(http.MethodDelete, "/yachts/Y1?confirm=true", nil)
	sts.Equal(http.StatusNoContent, w.Code, w.Body.String())
	sts.Equal([]string{"Y1"}, sts.Backend.deleted)
}

func (sts *ShellTestSuite) TestDiscardWorkflow() {
	sts.login()
	s := sts.begin()
	w := sts.do(http.MethodDelete, "/workflows/"+s.ID, nil)
	sts.Equal(http.StatusNoContent, w.Code)
	w = sts.do(http.MethodGet, "/workflows/"+s.ID, nil)
	sts.Equal(http.StatusNotFound, w.Code)
}

func (sts *ShellTestSuite) TestCatalog() {
	sts.login()
	w := sts.do(http.MethodGet, "/catalog", nil)
	sts.Require().Equal(http.StatusOK, w.Code)
	var cat struct {
		Categories []struct {
			Value string `json:"value"`
			Label string `json:"label"`
		} `json:"categories"`
		Packages []any `json:"packageTypes"`
	}
	sts.decode(w, &cat)
	sts.Len(cat.Categories, 4)
	sts.Equal("economy", cat.Categories[0].Value)
	sts.Len(cat.Packages, 9)
}
