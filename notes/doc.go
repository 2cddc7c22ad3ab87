// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package notes assigns public addresses to notes and publishes them.

# Addresses

A new note is stored as {slug}-{code}.html where slug comes from the title
and code is auth.ShortCode(title, secret). To edit a note the client sends
the code back; the Resolver finds the single file ending in -{code}.html and
reuses its name, so the URL does not change when the title does:

	name, err := resolver.Resolve(ctx, "Goodbye World", "1a2b3c")
	// "hello-world-1a2b3c" if that note was first published as "Hello World"

Zero matches (ErrUnknownCode) or several (ErrAmbiguousCode) fail the
request; a new address is never invented for an edit. The title
"share note index" (any case) always resolves to index.html.

# Publishing

	svc := notes.NewService(store, renderer, cfg.SecretAPIKey, cfg.ServerURL)
	url, err := svc.Publish(ctx, notes.Request{Title: t, Content: html})
	err = svc.Delete(ctx, "1a2b3c")

Resolution finishes before the single atomic write or delete. Two
concurrent creates of the same title write the same file; the last one
wins.
*/
package notes
