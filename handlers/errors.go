// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/sharenote/assets"
	"github.com/danielhkuo/sharenote/auth"
	"github.com/danielhkuo/sharenote/middleware"
	"github.com/danielhkuo/sharenote/models"
	"github.com/danielhkuo/sharenote/notes"
	"github.com/danielhkuo/sharenote/store"
)

// requireAuth checks the nonce/key headers against the shared secret.
// It writes a 401 and returns false when the request is not authorized.
func requireAuth(w http.ResponseWriter, r *http.Request, secret string) bool {
	nonce := r.Header.Get(models.HeaderNonce)
	key := r.Header.Get(models.HeaderKey)

	if err := auth.VerifyRequest(nonce, key, secret); err != nil {
		slog.Warn("unauthorized request", "path", r.URL.Path, "remote", middleware.GetClientIP(r), "error", err)
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid nonce or key")
		return false
	}
	return true
}

// statusFor maps a service error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, auth.ErrMissingCredentials), errors.Is(err, auth.ErrInvalidKey):
		return http.StatusUnauthorized
	case errors.Is(err, notes.ErrInvalidFilename),
		errors.Is(err, assets.ErrInvalidHash),
		errors.Is(err, store.ErrInvalidName):
		return http.StatusBadRequest
	case errors.Is(err, assets.ErrUnsupportedType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, notes.ErrUnknownCode),
		errors.Is(err, notes.ErrAmbiguousCode),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError responds with the status for err. Server errors are logged and
// their detail is not sent to the client.
func writeError(w http.ResponseWriter, err error, action string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("failed to "+action, "error", err)
		middleware.ErrorResponse(w, status, "Failed to "+action)
		return
	}
	middleware.ErrorResponse(w, status, err.Error())
}
