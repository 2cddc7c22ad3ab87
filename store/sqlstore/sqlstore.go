// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package sqlstore implements store.Store on the artifact table created by
// package db. Each write is a single upsert, so readers see whole rows only.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/sharenote/db"
	"github.com/danielhkuo/sharenote/store"
)

var errUnsupportedPattern = errors.New("unsupported glob syntax")

type Store struct {
	db     *sql.DB
	dbType string
}

var _ store.Store = (*Store)(nil)

// New wraps an open connection. The schema must already exist.
func New(conn *sql.DB, dbType string) *Store {
	return &Store{db: conn, dbType: dbType}
}

func (s *Store) Exists(ctx context.Context, name string) (bool, error) {
	if err := store.ValidName(name); err != nil {
		return false, err
	}

	var one int
	err := s.db.QueryRowContext(ctx, s.rebind(`SELECT 1 FROM artifact WHERE name = ?`), name).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query %s: %w", name, err)
	}
	return true, nil
}

func (s *Store) Read(ctx context.Context, name string) ([]byte, error) {
	if err := store.ValidName(name); err != nil {
		return nil, err
	}

	var data []byte
	err := s.db.QueryRowContext(ctx, s.rebind(`SELECT data FROM artifact WHERE name = ?`), name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

func (s *Store) Write(ctx context.Context, name string, data []byte) error {
	if err := store.ValidName(name); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO artifact (name, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`), name, data, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// FindByGlob supports the * and ? wildcards. SQLite evaluates the pattern
// with GLOB directly; PostgreSQL gets an escaped LIKE pattern.
func (s *Store) FindByGlob(ctx context.Context, pattern string) ([]string, error) {
	if strings.ContainsAny(pattern, "/\\") || pattern == "" {
		return nil, fmt.Errorf("%w: bad pattern %q", store.ErrInvalidName, pattern)
	}

	query := `SELECT name FROM artifact WHERE name GLOB ? ORDER BY name`
	arg := pattern
	if s.dbType == db.TypePostgres {
		like, err := globToLike(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", store.ErrInvalidName, err)
		}
		query = `SELECT name FROM artifact WHERE name LIKE ? ESCAPE '\' ORDER BY name`
		arg = like
	} else if strings.ContainsAny(pattern, "[]") {
		return nil, fmt.Errorf("%w: %v in %q", store.ErrInvalidName, errUnsupportedPattern, pattern)
	}

	rows, err := s.db.QueryContext(ctx, s.rebind(query), arg)
	if err != nil {
		return nil, fmt.Errorf("failed to glob %s: %w", pattern, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *Store) Delete(ctx context.Context, name string) error {
	if err := store.ValidName(name); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM artifact WHERE name = ?`), name)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", name, err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// rebind turns ? placeholders into $N for PostgreSQL.
func (s *Store) rebind(query string) string {
	if s.dbType != db.TypePostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func globToLike(pattern string) (string, error) {
	var b strings.Builder
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteByte('%')
		case '?':
			b.WriteByte('_')
		case '%', '_', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '[', ']':
			return "", fmt.Errorf("%w in %q", errUnsupportedPattern, pattern)
		default:
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}
