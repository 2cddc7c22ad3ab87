// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/sharenote/assets"
	"github.com/danielhkuo/sharenote/auth"
	"github.com/danielhkuo/sharenote/cliparse"
	"github.com/danielhkuo/sharenote/models"
	"github.com/danielhkuo/sharenote/notes"
	"github.com/danielhkuo/sharenote/render"
	"github.com/danielhkuo/sharenote/store/fsstore"
)

// TestSecret is the shared secret used by GetTestConfig
const TestSecret = "test-secret-api-key"

// TestServerURL is the public base URL used by GetTestConfig
const TestServerURL = "https://notes.example.com"

// SetupTestStore creates an empty file store in a temp directory
func SetupTestStore(t *testing.T) *fsstore.Store {
	t.Helper()

	s, err := fsstore.Open(filepath.Join(t.TempDir(), "static"))
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	return s
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:             8086,
		ServerURL:        TestServerURL,
		SecretAPIKey:     TestSecret,
		AllowedFiletypes: []string{"png", "jpg", "css", "svg"},
		StoreType:        cliparse.StoreFS,
		MaxUploadBytes:   1 << 10,
		LogLevel:         "info",
	}
}

// NewServices builds the note and asset services over s with the default template
func NewServices(s *fsstore.Store, cfg cliparse.Config) (*notes.Service, *assets.Service) {
	renderer := render.New(render.Default(), cfg.ServerURL)
	return notes.NewService(s, renderer, cfg.SecretAPIKey, cfg.ServerURL),
		assets.NewService(s, cfg.AllowedFiletypes, cfg.ServerURL)
}

// SignedHeaders returns a fresh nonce and the matching key for secret
func SignedHeaders(secret string) map[string]string {
	nonce := auth.GenerateNonce()
	return map[string]string{
		models.HeaderNonce: nonce,
		models.HeaderKey:   auth.Sign(nonce, secret),
	}
}

// UploadHeaders returns signed headers for uploading hash.filetype
func UploadHeaders(secret, hash, filetype string) map[string]string {
	headers := SignedHeaders(secret)
	headers[models.HeaderHash] = hash
	headers[models.HeaderFiletype] = filetype
	return headers
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeRawRequest creates an HTTP test request with an unencoded body
func MakeRawRequest(method, path string, body []byte, headers map[string]string) *http.Request {
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/octet-stream")

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
