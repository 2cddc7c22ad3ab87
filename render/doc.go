// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package render turns note data into the self-contained HTML artifact that is
published for a note.

# Templates

A template is HTML containing fixed placeholder tokens (TEMPLATE_TITLE,
TEMPLATE_NOTE_CONTENT, ...). Parse splits it into literal text and named
slots and fails with ErrTemplateIntegrity unless every token appears exactly
once:

	tmpl, err := render.Load("note-template.html")
	tmpl := render.Default() // embedded copy

# Rendering

	r := render.New(tmpl, "https://notes.example.com")
	page := r.Render(render.Note{Title: t, Description: d, Content: html})

Substitution is a single pass over the parsed segments, so inserted values
are never scanned for tokens. Title, description and content come from the
authenticated client and are inserted without escaping. When the
description is empty one is derived from the content's visible text.
*/
package render
