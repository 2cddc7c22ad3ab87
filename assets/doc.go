// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package assets validates and stores uploaded note assets.

An asset is named by its content hash and filetype: {hash}.{filetype}. The
hash must be lower-case hex and the filetype must be on the configured
allow-list before any name is built. Stylesheets are the exception: every
css upload is written to the single theme slot, theme.css, and the last
upload wins.

	svc := assets.NewService(store, cfg.AllowedFiletypes, cfg.ServerURL)
	url, err := svc.Upload(ctx, assets.FileRef{Hash: h, Filetype: "png"}, body)
	res, err := svc.CheckFiles(ctx, refs)

CheckFiles only reads the store.
*/
package assets
