// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package assets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/sharenote/render"
	"github.com/danielhkuo/sharenote/store"
)

// ThemeType is the filetype routed to the shared theme slot.
const ThemeType = "css"

var (
	ErrInvalidHash     = errors.New("invalid hash")
	ErrUnsupportedType = errors.New("unsupported filetype")
)

var hashPattern = regexp.MustCompile(`^[a-f0-9]+$`)

// FileRef identifies an uploaded asset by content hash and extension.
type FileRef struct {
	Hash     string
	Filetype string
}

// FileStatus is the result of probing one FileRef. URL is empty when the
// asset is not stored.
type FileStatus struct {
	FileRef
	URL string
}

// CheckResult is the outcome of CheckFiles. ThemeURL is empty when no
// theme has been uploaded.
type CheckResult struct {
	Files    []FileStatus
	ThemeURL string
}

type Service struct {
	store     store.Store
	allowed   map[string]bool
	serverURL string
}

func NewService(s store.Store, allowedFiletypes []string, serverURL string) *Service {
	allowed := make(map[string]bool, len(allowedFiletypes))
	for _, ft := range allowedFiletypes {
		allowed[strings.ToLower(ft)] = true
	}
	return &Service{store: s, allowed: allowed, serverURL: serverURL}
}

// Name validates ref and returns the stored name of the asset.
func (s *Service) Name(ref FileRef) (string, error) {
	if !hashPattern.MatchString(ref.Hash) {
		return "", fmt.Errorf("%w: %q", ErrInvalidHash, ref.Hash)
	}
	filetype := strings.ToLower(ref.Filetype)
	if !s.allowed[filetype] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, ref.Filetype)
	}
	if filetype == ThemeType {
		return render.ThemeName, nil
	}
	return ref.Hash + "." + filetype, nil
}

// Upload stores data under the name derived from ref and returns its URL.
// A css upload replaces the shared theme whatever its hash.
func (s *Service) Upload(ctx context.Context, ref FileRef, data []byte) (string, error) {
	name, err := s.Name(ref)
	if err != nil {
		return "", err
	}

	if err := s.store.Write(ctx, name, data); err != nil {
		return "", fmt.Errorf("failed to store %s: %w", name, err)
	}

	slog.Info("asset uploaded", "name", name, "size", humanize.Bytes(uint64(len(data))))
	return s.URL(name), nil
}

// CheckFiles reports which refs are already stored. Invalid refs are
// reported as missing without touching the store.
func (s *Service) CheckFiles(ctx context.Context, refs []FileRef) (CheckResult, error) {
	result := CheckResult{Files: make([]FileStatus, 0, len(refs))}

	for _, ref := range refs {
		status := FileStatus{FileRef: ref}

		name, err := s.Name(ref)
		if err == nil {
			ok, err := s.store.Exists(ctx, name)
			if err != nil {
				return CheckResult{}, fmt.Errorf("failed to check %s: %w", name, err)
			}
			if ok {
				status.URL = s.URL(name)
			}
		}

		result.Files = append(result.Files, status)
	}

	ok, err := s.store.Exists(ctx, render.ThemeName)
	if err != nil {
		return CheckResult{}, fmt.Errorf("failed to check theme: %w", err)
	}
	if ok {
		result.ThemeURL = s.URL(render.ThemeName)
	}

	return result, nil
}

// URL is the public address of a stored asset.
func (s *Service) URL(name string) string {
	return s.serverURL + "/static/" + name
}

// Get returns the bytes of a stored asset. Only theme.css and names of the
// form {hash}.{filetype} with an allowed filetype are served.
func (s *Service) Get(ctx context.Context, name string) ([]byte, error) {
	if name != render.ThemeName {
		hash, filetype, ok := strings.Cut(name, ".")
		if !ok || filetype == ThemeType {
			return nil, fmt.Errorf("%w: %q", store.ErrNotFound, name)
		}
		if _, err := s.Name(FileRef{Hash: hash, Filetype: filetype}); err != nil {
			return nil, err
		}
		if filetype != strings.ToLower(filetype) {
			return nil, fmt.Errorf("%w: %q", store.ErrNotFound, name)
		}
	}
	return s.store.Read(ctx, name)
}
