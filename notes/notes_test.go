// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notes

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/sharenote/auth"
	"github.com/danielhkuo/sharenote/render"
	"github.com/danielhkuo/sharenote/store"
	"github.com/danielhkuo/sharenote/store/fsstore"
)

const (
	testSecret    = "test-secret"
	testServerURL = "https://notes.example.com"
)

func newService(t *testing.T) (*Service, *fsstore.Store) {
	t.Helper()
	s, err := fsstore.Open(filepath.Join(t.TempDir(), "static"))
	require.NoError(t, err)
	return NewService(s, render.New(render.Default(), testServerURL), testSecret, testServerURL), s
}

func names(t *testing.T, s store.Store) []string {
	t.Helper()
	all, err := s.FindByGlob(context.Background(), "*.html")
	require.NoError(t, err)
	return all
}

func TestPublishNewNote(t *testing.T) {
	ctx := context.Background()
	svc, s := newService(t)

	url, err := svc.Publish(ctx, Request{Title: "Hello World", Content: "<p>hi</p>"})
	require.NoError(t, err)

	code := auth.ShortCode("Hello World", testSecret)
	assert.Equal(t, testServerURL+"/hello-world-"+code, url)
	assert.Equal(t, []string{"hello-world-" + code + ".html"}, names(t, s))

	page, err := svc.Get(ctx, "hello-world-"+code)
	require.NoError(t, err)
	assert.Contains(t, string(page), "<p>hi</p>")
}

func TestPublishKeepsAddressAcrossTitleChange(t *testing.T) {
	ctx := context.Background()
	svc, s := newService(t)

	_, err := svc.Publish(ctx, Request{Title: "Hello World", Content: "v1"})
	require.NoError(t, err)
	code := auth.ShortCode("Hello World", testSecret)

	url, err := svc.Publish(ctx, Request{Title: "Goodbye World", Content: "v2", ShortCode: code})
	require.NoError(t, err)

	assert.Equal(t, testServerURL+"/hello-world-"+code, url)
	assert.Equal(t, []string{"hello-world-" + code + ".html"}, names(t, s))

	page, err := svc.Get(ctx, "hello-world-"+code)
	require.NoError(t, err)
	assert.Contains(t, string(page), "<title>Goodbye World</title>")
	assert.Contains(t, string(page), "v2")
}

func TestPublishRepublishSameTitleIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, s := newService(t)

	first, err := svc.Publish(ctx, Request{Title: "Same", Content: "a"})
	require.NoError(t, err)
	second, err := svc.Publish(ctx, Request{Title: "Same", Content: "b"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, names(t, s), 1)
}

func TestPublishIndexTitle(t *testing.T) {
	for _, title := range []string{"Share Note Index", "share note index", "SHARE NOTE INDEX"} {
		t.Run(title, func(t *testing.T) {
			ctx := context.Background()
			svc, s := newService(t)

			url, err := svc.Publish(ctx, Request{Title: title, Content: "landing"})
			require.NoError(t, err)
			assert.Equal(t, testServerURL+"/", url)
			assert.Equal(t, []string{"index.html"}, names(t, s))
		})
	}
}

func TestPublishIndexTitleOverridesShortCode(t *testing.T) {
	ctx := context.Background()
	svc, s := newService(t)

	_, err := svc.Publish(ctx, Request{Title: "Share Note Index", ShortCode: "ffffff"})
	require.NoError(t, err)
	assert.Equal(t, []string{"index.html"}, names(t, s))
}

func TestPublishUnknownCode(t *testing.T) {
	svc, s := newService(t)

	_, err := svc.Publish(context.Background(), Request{Title: "New", ShortCode: "abcdef"})
	assert.ErrorIs(t, err, ErrUnknownCode)
	assert.Empty(t, names(t, s))
}

func TestPublishAmbiguousCode(t *testing.T) {
	ctx := context.Background()
	svc, s := newService(t)

	require.NoError(t, s.Write(ctx, "one-abcdef.html", []byte("1")))
	require.NoError(t, s.Write(ctx, "two-abcdef.html", []byte("2")))

	_, err := svc.Publish(ctx, Request{Title: "Whatever", ShortCode: "abcdef"})
	assert.ErrorIs(t, err, ErrAmbiguousCode)

	data, err := s.Read(ctx, "one-abcdef.html")
	require.NoError(t, err)
	assert.Equal(t, "1", string(data))
}

func TestPublishRejectsCraftedCodes(t *testing.T) {
	svc, s := newService(t)

	for _, code := range []string{"../etc", "ABC123", "a*", "a?b", "[x]", "a.b", "a/b"} {
		_, err := svc.Publish(context.Background(), Request{Title: "T", ShortCode: code})
		assert.ErrorIs(t, err, ErrInvalidFilename, code)
	}
	assert.Empty(t, names(t, s))
}

func TestPublishNonASCIITitle(t *testing.T) {
	svc, s := newService(t)

	_, err := svc.Publish(context.Background(), Request{Title: "日本語"})
	require.NoError(t, err)

	code := auth.ShortCode("日本語", testSecret)
	assert.Equal(t, []string{"-" + code + ".html"}, names(t, s))
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc, s := newService(t)

	_, err := svc.Publish(ctx, Request{Title: "Doomed"})
	require.NoError(t, err)
	_, err = svc.Publish(ctx, Request{Title: "Kept"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, auth.ShortCode("Doomed", testSecret)))
	assert.Equal(t, []string{"kept-" + auth.ShortCode("Kept", testSecret) + ".html"}, names(t, s))
}

func TestDeleteIndex(t *testing.T) {
	ctx := context.Background()
	svc, s := newService(t)

	assert.ErrorIs(t, svc.Delete(ctx, IndexName), ErrUnknownCode)

	_, err := svc.Publish(ctx, Request{Title: "Share Note Index"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, IndexName))
	assert.Empty(t, names(t, s))
}

func TestDeleteRequiresUniqueMatch(t *testing.T) {
	ctx := context.Background()
	svc, s := newService(t)

	assert.ErrorIs(t, svc.Delete(ctx, "abcdef"), ErrUnknownCode)

	require.NoError(t, s.Write(ctx, "one-abcdef.html", []byte("1")))
	require.NoError(t, s.Write(ctx, "two-abcdef.html", []byte("2")))

	assert.ErrorIs(t, svc.Delete(ctx, "abcdef"), ErrAmbiguousCode)
	assert.Len(t, names(t, s), 2)
}

func TestGetRejectsInvalidID(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Get(context.Background(), "../secret")
	assert.ErrorIs(t, err, ErrInvalidFilename)

	_, err = svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

type failingStore struct {
	store.Store
}

func (failingStore) Write(context.Context, string, []byte) error {
	return errors.New("disk full")
}

func TestPublishStorageFailure(t *testing.T) {
	_, s := newService(t)
	svc := NewService(failingStore{s}, render.New(render.Default(), testServerURL), testSecret, testServerURL)

	_, err := svc.Publish(context.Background(), Request{Title: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.False(t, errors.Is(err, ErrUnknownCode))
}

// Concurrent creates of one title race to the same name; exactly one file
// survives and every caller gets the same URL.
func TestConcurrentPublishSameTitle(t *testing.T) {
	ctx := context.Background()
	svc, s := newService(t)

	var wg sync.WaitGroup
	urls := make([]string, 10)
	errs := make([]error, 10)
	for i := range urls {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			urls[i], errs[i] = svc.Publish(ctx, Request{Title: "Race", Content: fmt.Sprintf("v%d", i)})
		}(i)
	}
	wg.Wait()

	for i := range urls {
		require.NoError(t, errs[i])
		assert.Equal(t, urls[0], urls[i])
	}
	assert.Len(t, names(t, s), 1)
}
