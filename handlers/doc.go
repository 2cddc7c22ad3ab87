// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Share Note API.

# Handler Types

Each handler is a struct with a service and config dependency:

  - NoteHandler: Note publish, update, delete and read
  - FileHandler: Asset upload, existence checks and static serving

Handlers are created via constructor functions:

	noteHandler := handlers.NewNoteHandler(noteService, cfg)
	fileHandler := handlers.NewFileHandler(assetService, cfg)

# Authentication

Upload, create-note and delete require two headers:

	x-sharenote-nonce: any caller-chosen string
	x-sharenote-key:   hex(sha256(nonce + SECRET_API_KEY))

Requests without a valid pair get 401 before anything else is read.

# Notes

	POST /v1/file/create-note → CreateNote (new note, or update by short code)
	POST /v1/file/delete      → DeleteNote (by short code or "index")
	GET  /{id}                → GetNote
	GET  /                    → Index

# Files

	POST /v1/file/check-files → CheckFiles (no auth, read only)
	POST /v1/file/upload      → Upload (raw body, x-sharenote-hash and x-sharenote-filetype headers)
	GET  /static/{name}       → ServeStatic

# Errors

Service errors map to status codes: 401 auth, 400 malformed name or hash,
415 filetype not allowed, 404 unknown or ambiguous short code, 413 body too
large, 500 storage failure.
*/
package handlers
