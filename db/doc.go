// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles backend selection, schema creation, and migration.

# Backends

Open connects to the configured backend:

	conn, err := db.Open(cfg)

SQLite (modernc.org/sqlite, the default) or PostgreSQL (lib/pq), selected
by DatabaseType. SQLite runs on a single connection so the database
serializes concurrent writers instead of returning SQLITE_BUSY.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS, and columns added after
the first release (comments.hidden, rooms.font_scale) are backfilled with
guarded ALTER TABLE statements.

# Tables

The schema includes:

  - rooms: Room metadata, focus pointer, moderation state
  - comments: Participant submissions with vote counter, tags, visibility
  - votes: One row per (room_code, comment_id, voter)

# Relationships

	rooms 1──* comments
	comments 1──* votes

The votes primary key is the one-vote-per-voter-per-comment guarantee.
rooms.focus_comment_id is a weak reference: readers treat a dangling
pointer as "no focus".

# Placeholders

The store writes queries with ? placeholders; Rebind translates them to
$n for postgres:

	conn.Exec(db.Rebind(dialect, query), args...)
*/
package db
