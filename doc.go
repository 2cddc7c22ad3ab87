// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Share Note server.

Share Note publishes notes from an editor plugin as static HTML pages. Each
note gets a stable address {slug}-{code} derived from its title and the
shared secret, and keeps it across later edits.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	SERVER_URL=https://notes.example.com SECRET_API_KEY=... go run .

Or with flags:

	go run . serve -p 8086 --server-url https://notes.example.com --secret ...

Variables may also be placed in a .env file (--env-file).

# Configuration

Required settings:

  - SERVER_URL (--server-url): Public base URL used in returned links
  - SECRET_API_KEY (--secret): Shared secret for request signing and short codes

Optional settings:

  - PORT (-p): Server port (default: 8086)
  - STORE_TYPE (--store): fs, sqlite or postgres (default: fs)
  - STATIC_DIR (--static-dir): Directory for the fs store (default: static)
  - DATABASE_URL (-d): Connection string for the sqlite or postgres store
  - ALLOWED_FILETYPES (--allowed-filetypes): Uploadable extensions
  - TEMPLATE_PATH (--template): Note template (default: built in)
  - MAX_UPLOAD_BYTES (--max-upload-bytes): Request body limit
  - LOG_LEVEL (--log-level): debug, info, warn or error

# Tools

	go run . shortcode "My Note"   # slug, code and filename for a title
	go run . sign                  # auth header values for manual calls

# Architecture

  - handlers: HTTP request handlers (notes, files)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - notes: Address resolution and the publish pipeline
  - assets: Asset naming, upload and existence checks
  - render: Note template substitution
  - store: Publication store interface with fs and sql backends
  - auth, slug: Short codes, request signing, title slugs
  - db: Database connection and schema
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
