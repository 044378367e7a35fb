// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/danielhkuo/ars-canvas/models"
)

// AddComment records a participant submission. Empty content (after
// trimming), an unknown room, and a closed room are all silent no-ops:
// the polling boundary pre-validates, and treating these as no-ops keeps
// client retries safe. The applied flag reports whether a row was written.
func (s *Store) AddComment(roomCode, author, content string) (bool, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return false, nil
	}

	var closed bool
	err := s.db.QueryRow(s.q(`
		SELECT is_closed FROM rooms WHERE code = ?
	`), roomCode).Scan(&closed)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query room: %w", err)
	}
	if closed {
		return false, nil
	}

	_, err = s.db.Exec(s.q(`
		INSERT INTO comments (room_code, author, content, created_at)
		VALUES (?, ?, ?, ?)
	`), roomCode, author, content, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("failed to insert comment: %w", err)
	}
	return true, nil
}

// ListComments returns a room's comments in popularity order: votes
// descending, then created_at descending (newest first among ties), with id
// as a final deterministic tiebreak. The keyword filter is case-sensitive
// substring containment on content. Hidden comments are excluded unless
// includeHidden is set.
func (s *Store) ListComments(roomCode, keyword string, includeHidden bool) ([]models.Comment, error) {
	query := `
		SELECT id, room_code, author, content, votes, tags, hidden, created_at
		FROM comments
		WHERE room_code = ?`
	args := []any{roomCode}

	if !includeHidden {
		query += ` AND hidden = ?`
		args = append(args, false)
	}

	query += ` ORDER BY votes DESC, created_at DESC, id DESC`

	rows, err := s.db.Query(s.q(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		// Substring containment in Go rather than LIKE: LIKE is
		// case-insensitive for ASCII in sqlite and the filter must be
		// case-sensitive and wildcard-proof on both backends.
		if keyword != "" && !strings.Contains(c.Content, keyword) {
			continue
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// GetComment is the direct read path for a single comment.
func (s *Store) GetComment(id int64) (models.Comment, error) {
	row := s.db.QueryRow(s.q(`
		SELECT id, room_code, author, content, votes, tags, hidden, created_at
		FROM comments
		WHERE id = ?
	`), id)

	c, err := scanComment(row)
	if err == sql.ErrNoRows {
		return models.Comment{}, ErrNotFound
	}
	if err != nil {
		return models.Comment{}, err
	}
	return c, nil
}

// TagComment appends a tag to a comment's tag set. Set semantics with
// insertion order preserved; tags are never removed here. Empty tags,
// unknown comments, and already-present tags are no-ops. Concurrent
// appends to the same comment are last-write-wins by design.
func (s *Store) TagComment(id int64, tag string) (bool, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false, nil
	}

	var raw string
	err := s.db.QueryRow(s.q(`
		SELECT tags FROM comments WHERE id = ?
	`), id).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query comment: %w", err)
	}

	tags := splitTags(raw)
	if slices.Contains(tags, tag) {
		return false, nil
	}
	tags = append(tags, tag)

	_, err = s.db.Exec(s.q(`
		UPDATE comments SET tags = ? WHERE id = ?
	`), joinTags(tags), id)
	if err != nil {
		return false, fmt.Errorf("failed to update tags: %w", err)
	}
	return true, nil
}

// SetHidden flips a comment's moderation visibility. Idempotent; unknown
// comments are a no-op. Hiding has no cascading effects beyond the focus
// selector's read-time visibility check.
func (s *Store) SetHidden(id int64, hidden bool) (bool, error) {
	res, err := s.db.Exec(s.q(`
		UPDATE comments SET hidden = ? WHERE id = ?
	`), hidden, id)
	if err != nil {
		return false, fmt.Errorf("failed to update comment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanComment(row rowScanner) (models.Comment, error) {
	var (
		c    models.Comment
		tags string
	)
	err := row.Scan(&c.ID, &c.RoomCode, &c.Author, &c.Content, &c.Votes, &tags, &c.Hidden, &c.CreatedAt)
	if err != nil {
		return models.Comment{}, err
	}
	c.Tags = splitTags(tags)
	return c, nil
}
