// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Slot names one placeholder in a note template.
type Slot int

const (
	SlotTitle Slot = iota
	SlotOGTitle
	SlotMetaDescription
	SlotWidth
	SlotCSS
	SlotAssetsWebroot
	SlotScripts
	SlotBody
	SlotPreview
	SlotPusher
	SlotNoteContent
	SlotEncryptedData
	numSlots
)

// tokenPrefix starts every placeholder. No token is a prefix of another.
const tokenPrefix = "TEMPLATE_"

var slotTokens = [numSlots]string{
	SlotTitle:           "TEMPLATE_TITLE",
	SlotOGTitle:         "TEMPLATE_OG_TITLE",
	SlotMetaDescription: "TEMPLATE_META_DESCRIPTION",
	SlotWidth:           "TEMPLATE_WIDTH",
	SlotCSS:             "TEMPLATE_CSS",
	SlotAssetsWebroot:   "TEMPLATE_ASSETS_WEBROOT",
	SlotScripts:         "TEMPLATE_SCRIPTS",
	SlotBody:            "TEMPLATE_BODY",
	SlotPreview:         "TEMPLATE_PREVIEW",
	SlotPusher:          "TEMPLATE_PUSHER",
	SlotNoteContent:     "TEMPLATE_NOTE_CONTENT",
	SlotEncryptedData:   "TEMPLATE_ENCRYPTED_DATA",
}

func (s Slot) String() string {
	if s < 0 || s >= numSlots {
		return fmt.Sprintf("Slot(%d)", int(s))
	}
	return slotTokens[s]
}

var ErrTemplateIntegrity = errors.New("template integrity")

//go:embed note-template.html
var defaultTemplate string

// segment is literal text followed by an optional slot.
type segment struct {
	text string
	slot Slot
}

// Template is a parsed note template: literal text interleaved with slots,
// each slot appearing exactly once.
type Template struct {
	segments []segment
	size     int
}

// Default returns the template compiled into the binary.
func Default() *Template {
	t, err := Parse(defaultTemplate)
	if err != nil {
		panic(err)
	}
	return t
}

// Load reads and parses a template file.
func Load(path string) (*Template, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	return Parse(string(raw))
}

// Parse splits raw into literal text and slots. Every slot must occur
// exactly once.
func Parse(raw string) (*Template, error) {
	var (
		segments []segment
		seen     [numSlots]int
		literal  strings.Builder
	)

	for rest := raw; rest != ""; {
		i := strings.Index(rest, tokenPrefix)
		if i < 0 {
			literal.WriteString(rest)
			break
		}
		literal.WriteString(rest[:i])
		rest = rest[i:]

		slot, ok := slotAt(rest)
		if !ok {
			literal.WriteString(tokenPrefix)
			rest = rest[len(tokenPrefix):]
			continue
		}

		seen[slot]++
		segments = append(segments, segment{text: literal.String(), slot: slot})
		literal.Reset()
		rest = rest[len(slotTokens[slot]):]
	}
	segments = append(segments, segment{text: literal.String(), slot: -1})

	var problems []string
	for slot, n := range seen {
		if n != 1 {
			problems = append(problems, fmt.Sprintf("%s appears %d times", Slot(slot), n))
		}
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrTemplateIntegrity, strings.Join(problems, ", "))
	}

	return &Template{segments: segments, size: len(raw)}, nil
}

// slotAt reports which token, if any, starts s. The longest token wins so
// the match is unambiguous even if tokens are added later.
func slotAt(s string) (Slot, bool) {
	best, bestLen := Slot(-1), 0
	for slot, token := range slotTokens {
		if len(token) > bestLen && strings.HasPrefix(s, token) {
			best, bestLen = Slot(slot), len(token)
		}
	}
	return best, bestLen > 0
}

// execute writes the template with each slot replaced by values[slot].
// Values are inserted as-is and never re-scanned for tokens.
func (t *Template) execute(values [numSlots]string) string {
	var b strings.Builder
	n := t.size
	for _, v := range values {
		n += len(v)
	}
	b.Grow(n)

	for _, seg := range t.segments {
		b.WriteString(seg.text)
		if seg.slot >= 0 {
			b.WriteString(values[seg.slot])
		}
	}
	return b.String()
}
