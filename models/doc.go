// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

Types for parsing incoming JSON:

  - CheckFilesRequest: files ([]{hash, filetype})
  - CreateNoteRequest: template {title, description, content}, filename
  - DeleteNoteRequest: filename

Uploads carry no JSON; their metadata travels in the x-sharenote-* headers
named by the Header constants.

# Response Types

Types for JSON responses:

  - CheckFilesResponse: success, files, css
  - URLResponse: success, url (upload and create-note)
  - SuccessResponse: success (delete)
  - ErrorResponse: success=false, error, message

The client expects false rather than null for absent values, so
OptionalURL and ThemeStatus encode as false when empty:

	{"hash": "deadbeef", "filetype": "png", "url": false}
	{"css": false}
*/
package models
