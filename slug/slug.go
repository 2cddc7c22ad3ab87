// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Make returns the slug for title. It never fails.
func Make(title string) string {
	decomposed := norm.NFKD.String(title)

	var b strings.Builder
	b.Grow(len(decomposed))

	pendingSep := false
	for _, r := range decomposed {
		if r > unicode.MaxASCII {
			// Combining marks left over from decomposition, and anything
			// without an ASCII form, are dropped.
			continue
		}

		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r >= 'A' && r <= 'Z':
			r = unicode.ToLower(r)
		case r == '-' || r == '_' || unicode.IsSpace(r):
			pendingSep = true
			continue
		default:
			continue
		}

		if pendingSep && b.Len() > 0 {
			b.WriteByte('-')
		}
		pendingSep = false
		b.WriteRune(r)
	}

	return b.String()
}
