// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/danielhkuo/ars-canvas/cliparse"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the configured database backend.
// SQLite is limited to a single connection: the store relies on the
// database serializing concurrent writes, and modernc's driver surfaces
// SQLITE_BUSY instead of queueing when two pool connections write at once.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	switch cfg.DatabaseType {
	case "postgres":
		return sql.Open("postgres", cfg.DatabaseURL)
	case "sqlite":
		conn, err := sql.Open("sqlite", cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		conn.SetMaxOpenConns(1)
		return conn, nil
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS, and column additions
// are guarded by a catalog check so old databases are upgraded in place.
func CreateSchema(db *sql.DB, dialect string) error {
	schema := schemaSQLite
	if dialect == "postgres" {
		schema = schemaPostgres
	}
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return migrate(db, dialect)
}

// migrate adds columns introduced after the first release. Databases
// created by CreateSchema already have them; this only fires for tables
// carried over from older deployments.
func migrate(db *sql.DB, dialect string) error {
	additions := []struct {
		table, column, definition string
	}{
		{"comments", "hidden", boolColumn(dialect) + " NOT NULL DEFAULT " + boolFalse(dialect)},
		{"rooms", "font_scale", floatColumn(dialect) + " NOT NULL DEFAULT 1.15"},
	}
	for _, a := range additions {
		ok, err := hasColumn(db, dialect, a.table, a.column)
		if err != nil {
			return fmt.Errorf("failed to inspect %s.%s: %w", a.table, a.column, err)
		}
		if ok {
			continue
		}
		stmt := "ALTER TABLE " + a.table + " ADD COLUMN " + a.column + " " + a.definition
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to add %s.%s: %w", a.table, a.column, err)
		}
	}
	return nil
}

func hasColumn(db *sql.DB, dialect, table, column string) (bool, error) {
	if dialect == "postgres" {
		var exists bool
		err := db.QueryRow(`
			SELECT EXISTS(
				SELECT 1 FROM information_schema.columns
				WHERE table_name = $1 AND column_name = $2
			)
		`, table, column).Scan(&exists)
		return exists, err
	}

	rows, err := db.Query("PRAGMA table_info(" + table + ")")
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid        int
			name, typ  string
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &defaultVal, &pk); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

func boolColumn(dialect string) string {
	if dialect == "postgres" {
		return "BOOLEAN"
	}
	return "INTEGER"
}

func boolFalse(dialect string) string {
	if dialect == "postgres" {
		return "FALSE"
	}
	return "0"
}

func floatColumn(dialect string) string {
	if dialect == "postgres" {
		return "DOUBLE PRECISION"
	}
	return "REAL"
}

// Rebind translates ? placeholders to the $n form for postgres.
// The store writes every query in ? style.
func Rebind(dialect, query string) string {
	if dialect != "postgres" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$")
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

const schemaSQLite = `
-- Rooms
CREATE TABLE IF NOT EXISTS rooms (
    code TEXT PRIMARY KEY,
    title TEXT NOT NULL DEFAULT 'Session',
    created_at TIMESTAMP NOT NULL,
    focus_comment_id INTEGER,
    admin_pin TEXT NOT NULL DEFAULT '',
    is_closed INTEGER NOT NULL DEFAULT 0,
    font_scale REAL NOT NULL DEFAULT 1.15
);

-- Comments
CREATE TABLE IF NOT EXISTS comments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    room_code TEXT NOT NULL,
    author TEXT NOT NULL DEFAULT '',
    content TEXT NOT NULL,
    votes INTEGER NOT NULL DEFAULT 0,
    tags TEXT NOT NULL DEFAULT '',
    hidden INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_comments_room_code ON comments(room_code);

-- Votes
CREATE TABLE IF NOT EXISTS votes (
    room_code TEXT NOT NULL,
    comment_id INTEGER NOT NULL,
    voter TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    PRIMARY KEY (room_code, comment_id, voter)
);
`

const schemaPostgres = `
-- Rooms
CREATE TABLE IF NOT EXISTS rooms (
    code TEXT PRIMARY KEY,
    title TEXT NOT NULL DEFAULT 'Session',
    created_at TIMESTAMP NOT NULL,
    focus_comment_id BIGINT,
    admin_pin TEXT NOT NULL DEFAULT '',
    is_closed BOOLEAN NOT NULL DEFAULT FALSE,
    font_scale DOUBLE PRECISION NOT NULL DEFAULT 1.15
);

-- Comments
CREATE TABLE IF NOT EXISTS comments (
    id BIGSERIAL PRIMARY KEY,
    room_code TEXT NOT NULL,
    author TEXT NOT NULL DEFAULT '',
    content TEXT NOT NULL,
    votes INTEGER NOT NULL DEFAULT 0,
    tags TEXT NOT NULL DEFAULT '',
    hidden BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_comments_room_code ON comments(room_code);

-- Votes
CREATE TABLE IF NOT EXISTS votes (
    room_code TEXT NOT NULL,
    comment_id BIGINT NOT NULL,
    voter TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    PRIMARY KEY (room_code, comment_id, voter)
);
`
