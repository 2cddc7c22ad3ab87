// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the shared-secret primitives used by the server.

# Request Authentication

Every mutating request carries a caller-chosen nonce and a key derived from
it with the shared secret:

	x-sharenote-nonce: <nonce>
	x-sharenote-key:   hex(sha256(nonce + secret))

Clients compute the key with Sign and the server checks it with
VerifyRequest:

	key := auth.Sign(nonce, secret)
	err := auth.VerifyRequest(nonce, key, secret)

The server keeps no record of nonces, so a captured nonce/key pair can be
replayed. The comparison is constant-time.

# Short Codes

Short codes give each note a public suffix that stays fixed across edits:

	code := auth.ShortCode(title, secret) // 6 hex characters

Like the request key, the code is hex(sha256(title + secret)), truncated.
It is only computed when a note is first published; later edits locate the
note by the code embedded in its filename.

# Nonces

	nonce := auth.GenerateNonce()

Returns a random UUID, used by the sign command.
*/
package auth
