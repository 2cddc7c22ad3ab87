// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"testing"
)

func TestCheckFilesResponseEncoding(t *testing.T) {
	resp := CheckFilesResponse{
		Success: true,
		Files: []FileStatus{
			{Hash: "abc123", Filetype: "png", URL: "https://n.example.com/static/abc123.png"},
			{Hash: "deadbeef", Filetype: "png"},
		},
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatal(err)
	}

	want := `{"success":true,"files":[{"hash":"abc123","filetype":"png","url":"https://n.example.com/static/abc123.png"},{"hash":"deadbeef","filetype":"png","url":false}],"css":false}`
	if string(data) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", data, want)
	}

	resp.CSS = ThemeStatus{URL: "https://n.example.com/static/theme.css"}
	data, err = json.Marshal(resp)
	if err != nil {
		t.Fatal(err)
	}

	var decoded CheckFilesResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.CSS.URL != resp.CSS.URL {
		t.Errorf("css url = %q, want %q", decoded.CSS.URL, resp.CSS.URL)
	}
	if decoded.Files[1].URL != "" {
		t.Errorf("missing file url = %q, want empty", decoded.Files[1].URL)
	}
}

func TestCreateNoteRequestDecoding(t *testing.T) {
	body := `{"template":{"title":"Hello","description":"d","content":"<p>c</p>","extra":1},"filename":"1a2b3c"}`

	var req CreateNoteRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatal(err)
	}
	if req.Template.Title != "Hello" || req.Template.Content != "<p>c</p>" || req.Filename != "1a2b3c" {
		t.Errorf("unexpected decode: %+v", req)
	}
}
