// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Share Note API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, render.Default(), cfg)

# Endpoints

Health:

	GET /health

Plugin API (upload, create-note and delete require x-sharenote-nonce and
x-sharenote-key):

	POST /v1/file/check-files - Probe which assets are already stored
	POST /v1/file/upload      - Store one asset from the raw body
	POST /v1/file/create-note - Publish or update a note
	POST /v1/file/delete      - Remove a note by short code

Published content (public):

	GET /                - Landing page, or a banner if none is published
	GET /{id}            - Published note
	GET /static/{name}   - Uploaded asset or theme.css

# Handler Initialization

The router builds the note and asset services over one store and hands
them to the handlers:

	noteHandler := handlers.NewNoteHandler(noteService, cfg)
	fileHandler := handlers.NewFileHandler(assetService, cfg)
*/
package router
