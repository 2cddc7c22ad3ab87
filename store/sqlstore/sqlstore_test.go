// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sqlstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/sharenote/db"
	"github.com/danielhkuo/sharenote/store"
)

func newSQLiteStore(t *testing.T) *Store {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, filepath.Join(t.TempDir(), "sharenote.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.CreateSchema(conn, db.TypeSQLite))
	// Safe to call twice.
	require.NoError(t, db.CreateSchema(conn, db.TypeSQLite))

	return New(conn, db.TypeSQLite)
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	ok, err := s.Exists(ctx, "abc123.png")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Write(ctx, "abc123.png", []byte{0x89, 'P', 'N', 'G'}))
	require.NoError(t, s.Write(ctx, "abc123.png", []byte{0x89, 'P', 'N', 'G', 0}))

	ok, err = s.Exists(ctx, "abc123.png")
	require.NoError(t, err)
	assert.True(t, ok)

	data, err := s.Read(ctx, "abc123.png")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G', 0}, data)

	require.NoError(t, s.Delete(ctx, "abc123.png"))
	assert.ErrorIs(t, s.Delete(ctx, "abc123.png"), store.ErrNotFound)

	_, err = s.Read(ctx, "abc123.png")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSQLiteFindByGlob(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	for _, name := range []string{"hello-world-abc123.html", "x_y-abc123.png", "other-def456.html", "HELLO-abc123.HTML"} {
		require.NoError(t, s.Write(ctx, name, []byte(name)))
	}

	matches, err := s.FindByGlob(ctx, "*-abc123.html")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello-world-abc123.html"}, matches)

	matches, err = s.FindByGlob(ctx, "*-zzzzzz.html")
	require.NoError(t, err)
	assert.Empty(t, matches)

	_, err = s.FindByGlob(ctx, "../*.html")
	assert.ErrorIs(t, err, store.ErrInvalidName)

	_, err = s.FindByGlob(ctx, "[ab]*.html")
	assert.ErrorIs(t, err, store.ErrInvalidName)
}

func TestSQLiteInvalidNames(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	assert.ErrorIs(t, s.Write(ctx, "../x.html", []byte("x")), store.ErrInvalidName)
	_, err := s.Exists(ctx, ".hidden")
	assert.ErrorIs(t, err, store.ErrInvalidName)
}

func TestGlobToLike(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
		wantErr bool
	}{
		{"*-abc123.html", "%-abc123.html", false},
		{"note?.html", "note_.html", false},
		{"snake_case-*.html", `snake\_case-%.html`, false},
		{"100%.html", `100\%.html`, false},
		{"[ab].html", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := globToLike(tt.pattern)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRebind(t *testing.T) {
	pg := New(nil, db.TypePostgres)
	assert.Equal(t, "SELECT a FROM t WHERE x = $1 AND y = $2", pg.rebind("SELECT a FROM t WHERE x = ? AND y = ?"))

	lite := New(nil, db.TypeSQLite)
	assert.Equal(t, "SELECT a FROM t WHERE x = ?", lite.rebind("SELECT a FROM t WHERE x = ?"))
}
