// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/sharenote/render"
	"github.com/danielhkuo/sharenote/store"
)

// Request is a create-or-update call. ShortCode is empty for a new note.
type Request struct {
	Title       string
	Description string
	Content     string
	ShortCode   string
}

// Service runs the publication pipeline: resolve, render, write.
type Service struct {
	store     store.Store
	resolver  *Resolver
	renderer  *render.Renderer
	serverURL string
}

func NewService(s store.Store, renderer *render.Renderer, secret, serverURL string) *Service {
	return &Service{
		store:     s,
		resolver:  NewResolver(s, secret),
		renderer:  renderer,
		serverURL: serverURL,
	}
}

// Publish writes the rendered note and returns its public URL. Nothing is
// written unless the filename resolves.
func (s *Service) Publish(ctx context.Context, req Request) (string, error) {
	name, err := s.resolver.Resolve(ctx, req.Title, req.ShortCode)
	if err != nil {
		return "", err
	}

	page := s.renderer.Render(render.Note{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
	})

	if err := s.store.Write(ctx, name+noteExt, []byte(page)); err != nil {
		return "", fmt.Errorf("failed to publish %s: %w", name, err)
	}

	slog.Info("note published", "name", name, "update", req.ShortCode != "", "bytes", len(page))

	return s.URL(name), nil
}

// Delete removes the note addressed by filename, which is either a short
// code or IndexName. Nothing is removed unless exactly one note matches.
func (s *Service) Delete(ctx context.Context, filename string) error {
	var target string
	if filename == IndexName {
		target = IndexName + noteExt
	} else {
		existing, err := s.resolver.FindByCode(ctx, filename)
		if err != nil {
			return err
		}
		target = existing
	}

	if err := s.store.Delete(ctx, target); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrUnknownCode, filename)
		}
		return fmt.Errorf("failed to delete %s: %w", target, err)
	}

	slog.Info("note deleted", "name", target)
	return nil
}

// Get returns the published HTML for id.
func (s *Service) Get(ctx context.Context, id string) ([]byte, error) {
	if !ValidID(id) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilename, id)
	}
	return s.store.Read(ctx, id+noteExt)
}

// URL is the public address of a note named name.
func (s *Service) URL(name string) string {
	if name == IndexName {
		return s.serverURL + "/"
	}
	return s.serverURL + "/" + name
}
