// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the optional SQL backend and creates its schema.

# Connecting

	conn, err := db.Open(db.TypeSQLite, "file:sharenote.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

SQLite uses the pure-Go modernc.org/sqlite driver; PostgreSQL uses lib/pq.

# Schema

	err := db.CreateSchema(conn, db.TypeSQLite)

A single table holds every published object:

	artifact(name TEXT PRIMARY KEY, data, updated_at)

name is the flat file name (e.g. hello-world-1a2b3c.html, abc123.png,
theme.css) and data is the raw bytes. The column types differ per dialect
(BLOB/INTEGER on SQLite, BYTEA/BIGINT on PostgreSQL).
*/
package db
