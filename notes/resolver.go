// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notes

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/danielhkuo/sharenote/auth"
	"github.com/danielhkuo/sharenote/slug"
	"github.com/danielhkuo/sharenote/store"
)

const (
	// IndexTitle publishes the site landing page when used as a title.
	IndexTitle = "share note index"
	// IndexName is the fixed filename (without extension) of the landing page.
	IndexName = "index"

	noteExt = ".html"
)

var (
	ErrInvalidFilename = errors.New("invalid filename")
	ErrUnknownCode     = errors.New("no note matches short code")
	ErrAmbiguousCode   = errors.New("short code matches more than one note")
)

var namePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// Resolver maps a publish request to the filename it must write.
type Resolver struct {
	store  store.Store
	secret string
}

func NewResolver(s store.Store, secret string) *Resolver {
	return &Resolver{store: s, secret: secret}
}

// Resolve returns the note's filename without the .html extension.
//
// With no short code the name is derived from the title. With a short code
// the name of the single existing note carrying that code is reused, so the
// public address survives title changes. The reserved index title always
// resolves to IndexName.
func (r *Resolver) Resolve(ctx context.Context, title, shortCode string) (string, error) {
	var name string
	switch {
	case IsIndexTitle(title):
		name = IndexName
	case shortCode == "":
		name = slug.Make(title) + "-" + auth.ShortCode(title, r.secret)
	default:
		existing, err := r.FindByCode(ctx, shortCode)
		if err != nil {
			return "", err
		}
		name = strings.TrimSuffix(existing, noteExt)
	}

	if !namePattern.MatchString(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilename, name)
	}
	return name, nil
}

// IsIndexTitle reports whether title publishes the landing page.
func IsIndexTitle(title string) bool {
	return strings.EqualFold(strings.TrimSpace(title), IndexTitle)
}

// FindByCode returns the one stored note whose name ends in -{code}.html.
func (r *Resolver) FindByCode(ctx context.Context, code string) (string, error) {
	if !namePattern.MatchString(code) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilename, code)
	}

	matches, err := r.store.FindByGlob(ctx, "*-"+code+noteExt)
	if err != nil {
		return "", fmt.Errorf("failed to look up %s: %w", code, err)
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrUnknownCode, code)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %s (%d files)", ErrAmbiguousCode, code, len(matches))
	}
}

// ValidID reports whether id can name a published note.
func ValidID(id string) bool {
	return namePattern.MatchString(id)
}
