// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/danielhkuo/sharenote/cliparse"
	"github.com/danielhkuo/sharenote/middleware"
	"github.com/danielhkuo/sharenote/models"
	"github.com/danielhkuo/sharenote/notes"
	"github.com/danielhkuo/sharenote/store"
)

// Banner is served on GET / until a landing page is published.
const Banner = "Share Note API server"

type NoteHandler struct {
	notes *notes.Service
	cfg   cliparse.Config
}

func NewNoteHandler(svc *notes.Service, cfg cliparse.Config) *NoteHandler {
	return &NoteHandler{notes: svc, cfg: cfg}
}

// CreateNote handles POST /v1/file/create-note
func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	if !requireAuth(w, r, h.cfg.SecretAPIKey) {
		return
	}

	var req models.CreateNoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	url, err := h.notes.Publish(r.Context(), notes.Request{
		Title:       req.Template.Title,
		Description: req.Template.Description,
		Content:     req.Template.Content,
		ShortCode:   req.Filename,
	})
	if err != nil {
		writeError(w, err, "publish note")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.URLResponse{
		Success: true,
		URL:     url,
	})
}

// DeleteNote handles POST /v1/file/delete
func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	if !requireAuth(w, r, h.cfg.SecretAPIKey) {
		return
	}

	var req models.DeleteNoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Filename == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "filename is required")
		return
	}

	if err := h.notes.Delete(r.Context(), req.Filename); err != nil {
		writeError(w, err, "delete note")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// GetNote handles GET /{id}
func (h *NoteHandler) GetNote(w http.ResponseWriter, r *http.Request) {
	page, err := h.notes.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, notes.ErrInvalidFilename) || errors.Is(err, store.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		writeError(w, err, "read note")
		return
	}

	writeHTML(w, page)
}

// Index handles GET /
func (h *NoteHandler) Index(w http.ResponseWriter, r *http.Request) {
	page, err := h.notes.Get(r.Context(), notes.IndexName)
	if errors.Is(err, store.ErrNotFound) {
		w.Write([]byte(Banner))
		return
	}
	if err != nil {
		writeError(w, err, "read index")
		return
	}

	writeHTML(w, page)
}

func writeHTML(w http.ResponseWriter, page []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page)
}
