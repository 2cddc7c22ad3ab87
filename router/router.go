// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/sharenote/assets"
	"github.com/danielhkuo/sharenote/cliparse"
	"github.com/danielhkuo/sharenote/handlers"
	"github.com/danielhkuo/sharenote/middleware"
	"github.com/danielhkuo/sharenote/notes"
	"github.com/danielhkuo/sharenote/render"
	"github.com/danielhkuo/sharenote/store"
)

func NewRouter(s store.Store, tmpl *render.Template, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize services and handlers
	renderer := render.New(tmpl, cfg.ServerURL)
	noteHandler := handlers.NewNoteHandler(notes.NewService(s, renderer, cfg.SecretAPIKey, cfg.ServerURL), cfg)
	fileHandler := handlers.NewFileHandler(assets.NewService(s, cfg.AllowedFiletypes, cfg.ServerURL), cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Plugin API
	mux.HandleFunc("POST /v1/file/check-files", middleware.WithLogging(fileHandler.CheckFiles))
	mux.HandleFunc("POST /v1/file/upload", middleware.WithLogging(fileHandler.Upload))
	mux.HandleFunc("POST /v1/file/create-note", middleware.WithLogging(noteHandler.CreateNote))
	mux.HandleFunc("POST /v1/file/delete", middleware.WithLogging(noteHandler.DeleteNote))

	// Published content (public)
	mux.HandleFunc("GET /static/{name}", middleware.WithLogging(fileHandler.ServeStatic))
	mux.HandleFunc("GET /{id}", middleware.WithLogging(noteHandler.GetNote))

	// Root endpoint
	mux.HandleFunc("GET /{$}", middleware.WithLogging(noteHandler.Index))

	return mux
}
