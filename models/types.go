// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"encoding/json"
)

// Request headers
const (
	HeaderHash     = "x-sharenote-hash"
	HeaderFiletype = "x-sharenote-filetype"
	HeaderNonce    = "x-sharenote-nonce"
	HeaderKey      = "x-sharenote-key"
)

// Request types

type FileRef struct {
	Hash     string `json:"hash"`
	Filetype string `json:"filetype"`
}

type CheckFilesRequest struct {
	Files []FileRef `json:"files"`
}

type NoteTemplate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// Filename is the short code of an existing note; empty for a new note.
type CreateNoteRequest struct {
	Template NoteTemplate `json:"template"`
	Filename string       `json:"filename,omitempty"`
}

// Filename is a short code or "index".
type DeleteNoteRequest struct {
	Filename string `json:"filename"`
}

// Response types

// OptionalURL encodes as the URL string, or false when empty.
type OptionalURL string

func (u OptionalURL) MarshalJSON() ([]byte, error) {
	if u == "" {
		return []byte("false"), nil
	}
	return json.Marshal(string(u))
}

func (u *OptionalURL) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("false")) || bytes.Equal(data, []byte("null")) {
		*u = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*u = OptionalURL(s)
	return nil
}

type FileStatus struct {
	Hash     string      `json:"hash"`
	Filetype string      `json:"filetype"`
	URL      OptionalURL `json:"url"`
}

// ThemeStatus encodes as {"url": ...}, or false when no theme is stored.
type ThemeStatus struct {
	URL string `json:"url"`
}

func (t ThemeStatus) MarshalJSON() ([]byte, error) {
	if t.URL == "" {
		return []byte("false"), nil
	}
	type plain ThemeStatus
	return json.Marshal(plain(t))
}

func (t *ThemeStatus) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("false")) || bytes.Equal(data, []byte("null")) {
		*t = ThemeStatus{}
		return nil
	}
	type plain ThemeStatus
	return json.Unmarshal(data, (*plain)(t))
}

type CheckFilesResponse struct {
	Success bool         `json:"success"`
	Files   []FileStatus `json:"files"`
	CSS     ThemeStatus  `json:"css"`
}

type URLResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}
