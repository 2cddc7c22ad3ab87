// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path"

	"github.com/danielhkuo/sharenote/assets"
	"github.com/danielhkuo/sharenote/cliparse"
	"github.com/danielhkuo/sharenote/middleware"
	"github.com/danielhkuo/sharenote/models"
)

type FileHandler struct {
	assets *assets.Service
	cfg    cliparse.Config
}

func NewFileHandler(svc *assets.Service, cfg cliparse.Config) *FileHandler {
	return &FileHandler{assets: svc, cfg: cfg}
}

// CheckFiles handles POST /v1/file/check-files
func (h *FileHandler) CheckFiles(w http.ResponseWriter, r *http.Request) {
	var req models.CheckFilesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	refs := make([]assets.FileRef, len(req.Files))
	for i, f := range req.Files {
		refs[i] = assets.FileRef{Hash: f.Hash, Filetype: f.Filetype}
	}

	result, err := h.assets.CheckFiles(r.Context(), refs)
	if err != nil {
		writeError(w, err, "check files")
		return
	}

	files := make([]models.FileStatus, len(result.Files))
	for i, f := range result.Files {
		files[i] = models.FileStatus{
			Hash:     f.Hash,
			Filetype: f.Filetype,
			URL:      models.OptionalURL(f.URL),
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.CheckFilesResponse{
		Success: true,
		Files:   files,
		CSS:     models.ThemeStatus{URL: result.ThemeURL},
	})
}

// Upload handles POST /v1/file/upload
// The asset is the raw request body; hash and filetype come from headers.
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if !requireAuth(w, r, h.cfg.SecretAPIKey) {
		return
	}

	ref := assets.FileRef{
		Hash:     r.Header.Get(models.HeaderHash),
		Filetype: r.Header.Get(models.HeaderFiletype),
	}
	slog.Debug("upload received",
		"hash", ref.Hash,
		"filetype", ref.Filetype,
		"content_type", r.Header.Get("Content-Type"),
		"content_length", r.ContentLength,
	)

	// Reject before reading the body
	if _, err := h.assets.Name(ref); err != nil {
		writeError(w, err, "upload file")
		return
	}

	body := http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)
	defer body.Close()
	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, "Failed to read body")
		return
	}

	url, err := h.assets.Upload(r.Context(), ref, data)
	if err != nil {
		writeError(w, err, "upload file")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.URLResponse{
		Success: true,
		URL:     url,
	})
}

// ServeStatic handles GET /static/{name}
func (h *FileHandler) ServeStatic(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	data, err := h.assets.Get(r.Context(), name)
	if err != nil {
		switch statusFor(err) {
		case http.StatusInternalServerError:
			writeError(w, err, "read file")
		default:
			http.NotFound(w, r)
		}
		return
	}

	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.Write(data)
}
