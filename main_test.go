// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/sharenote/auth"
	"github.com/danielhkuo/sharenote/cliparse"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	envFile := filepath.Join(t.TempDir(), ".env")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--env-file", envFile))
	err := cmd.Execute()
	return out.String(), err
}

func TestShortCodeCommand(t *testing.T) {
	t.Setenv("SECRET_API_KEY", "cli-secret")

	out, err := run(t, "shortcode", "Hello World")
	require.NoError(t, err)

	code := auth.ShortCode("Hello World", "cli-secret")
	assert.Contains(t, out, "slug:     hello-world\n")
	assert.Contains(t, out, "code:     "+code+"\n")
	assert.Contains(t, out, "filename: hello-world-"+code+".html\n")
}

func TestShortCodeCommandIndex(t *testing.T) {
	t.Setenv("SECRET_API_KEY", "cli-secret")

	out, err := run(t, "shortcode", "Share Note Index")
	require.NoError(t, err)
	assert.Equal(t, "filename: index.html\n", out)
}

func TestSignCommand(t *testing.T) {
	out, err := run(t, "sign", "nonce-1", "--secret", "flag-secret")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "x-sharenote-nonce: nonce-1", lines[0])
	assert.Equal(t, "x-sharenote-key: "+auth.Sign("nonce-1", "flag-secret"), lines[1])
	assert.NoError(t, auth.VerifyRequest("nonce-1", strings.TrimPrefix(lines[1], "x-sharenote-key: "), "flag-secret"))
}

func TestSignCommandRequiresSecret(t *testing.T) {
	t.Setenv("SECRET_API_KEY", "")

	_, err := run(t, "sign")
	assert.Error(t, err)
}

func TestOpenStore(t *testing.T) {
	dir := t.TempDir()

	s, closeStore, err := openStore(cliparse.Config{StoreType: cliparse.StoreFS, StaticDir: filepath.Join(dir, "static")})
	require.NoError(t, err)
	closeStore()
	assert.NotNil(t, s)

	s, closeStore, err = openStore(cliparse.Config{StoreType: cliparse.StoreSQLite, DatabaseURL: filepath.Join(dir, "notes.db")})
	require.NoError(t, err)
	defer closeStore()
	assert.NotNil(t, s)

	_, _, err = openStore(cliparse.Config{StoreType: "s3"})
	assert.Error(t, err)
}
