// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package store defines the flat namespace that holds published notes and
// assets. Names are single path elements such as "hello-world-1a2b3c.html"
// or "theme.css".
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrInvalidName = errors.New("invalid name")
)

// Store is the publication namespace. Write must be atomic: a concurrent
// Read never observes a partially written object.
type Store interface {
	Exists(ctx context.Context, name string) (bool, error)
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, data []byte) error
	FindByGlob(ctx context.Context, pattern string) ([]string, error)
	Delete(ctx context.Context, name string) error
}

// ValidName rejects names that are empty, hidden, or not a single path element.
func ValidName(name string) error {
	if name == "" || name == "." || name == ".." || strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
