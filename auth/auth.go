// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/google/uuid"
)

// ShortCodeLength is the number of hex characters kept from the title digest.
const ShortCodeLength = 6

var (
	ErrMissingCredentials = errors.New("missing nonce or key")
	ErrInvalidKey         = errors.New("invalid key")
)

// ShortCode derives the public short code for a note title.
// The code is stable for a given title and secret, and cannot be guessed
// from the title alone.
func ShortCode(title, secret string) string {
	return digest(title, secret)[:ShortCodeLength]
}

// Sign computes the key a client sends alongside nonce.
func Sign(nonce, secret string) string {
	return digest(nonce, secret)
}

// VerifyRequest checks that key was produced by Sign(nonce, secret).
//
// Both sides are hashed to fixed-length digests before comparing, so the
// comparison takes the same time whatever the length of the supplied key.
func VerifyRequest(nonce, key, secret string) error {
	if nonce == "" || key == "" {
		return ErrMissingCredentials
	}

	expected := sha256.Sum256([]byte(Sign(nonce, secret)))
	got := sha256.Sum256([]byte(key))
	if !hmac.Equal(got[:], expected[:]) {
		return ErrInvalidKey
	}
	return nil
}

// GenerateNonce returns a fresh random nonce for signing a request.
func GenerateNonce() string {
	return uuid.NewString()
}

func digest(value, secret string) string {
	h := sha256.New()
	h.Write([]byte(value))
	h.Write([]byte(secret))
	return hex.EncodeToString(h.Sum(nil))
}
