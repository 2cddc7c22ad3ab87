// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	nethtml "golang.org/x/net/html"
)

// ThemeName is the single stylesheet slot shared by every note.
const ThemeName = "theme.css"

// maxDescriptionRunes bounds the description derived from note content.
const maxDescriptionRunes = 160

// Fixed markup carried over from the Obsidian export the client renders.
const (
	widthRule   = `.markdown-preview-sizer.markdown-preview-section { max-width: 630px !important; margin: 0 auto; }`
	bodyAttrs   = `class="mod-linux is-frameless is-hidden-frameless obsidian-app theme-light show-inline-title show-ribbon show-view-header is-focused share-note-plugin" style="--zoom-factor: 1; --font-text-size: 16px;"`
	previewAttr = `class="markdown-preview-view markdown-rendered node-insert-event allow-fold-headings show-indentation-guide allow-fold-lists show-properties" style="tab-size: 4;"`
	pusherAttrs = `class="markdown-preview-pusher" style="width: 1px; height: 0.1px;"`
)

// Note is the caller-supplied part of a rendered note.
type Note struct {
	Title       string
	Description string
	Content     string
}

// Renderer produces note artifacts for one server.
type Renderer struct {
	tmpl      *Template
	serverURL string
}

func New(tmpl *Template, serverURL string) *Renderer {
	return &Renderer{tmpl: tmpl, serverURL: strings.TrimRight(serverURL, "/")}
}

// Render fills every slot of the template. Title, description and content
// are trusted and inserted without escaping.
func (r *Renderer) Render(note Note) string {
	description := note.Description
	if description == "" {
		description = html.EscapeString(Summarize(note.Content))
	}

	var values [numSlots]string
	values[SlotTitle] = note.Title
	values[SlotOGTitle] = fmt.Sprintf(`<meta property="og:title" content="%s">`, note.Title)
	values[SlotMetaDescription] = fmt.Sprintf(`<meta name="description" content="%s" property="og:description">`, description)
	values[SlotWidth] = widthRule
	values[SlotCSS] = r.serverURL + "/static/" + ThemeName
	values[SlotAssetsWebroot] = r.serverURL + "/static"
	values[SlotBody] = bodyAttrs
	values[SlotPreview] = previewAttr
	values[SlotPusher] = pusherAttrs
	values[SlotNoteContent] = note.Content
	// SlotScripts and SlotEncryptedData are reserved and stay empty.

	return r.tmpl.execute(values)
}

// Summarize returns the leading visible text of an HTML fragment, with
// whitespace collapsed, cut to a word boundary near 160 characters.
func Summarize(fragment string) string {
	z := nethtml.NewTokenizer(strings.NewReader(fragment))

	var b strings.Builder
	skip := 0
	for b.Len() < maxDescriptionRunes*4 {
		tt := z.Next()
		if tt == nethtml.ErrorToken {
			break
		}

		switch tt {
		case nethtml.StartTagToken, nethtml.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "script", "style":
				if tt == nethtml.StartTagToken {
					skip++
				} else if skip > 0 {
					skip--
				}
			}
			b.WriteByte(' ')
		case nethtml.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		}
	}

	text := strings.Join(strings.Fields(b.String()), " ")
	if utf8.RuneCountInString(text) <= maxDescriptionRunes {
		return text
	}

	cut := []rune(text)[:maxDescriptionRunes]
	if i := strings.LastIndexByte(string(cut), ' '); i > 0 {
		return string(cut)[:i] + "…"
	}
	return string(cut) + "…"
}
