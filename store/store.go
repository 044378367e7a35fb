// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"regexp"
	"strings"

	"github.com/danielhkuo/ars-canvas/db"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrCodeTaken     = errors.New("room code already in use")
	ErrBadCode       = errors.New("room code must be exactly 6 digits")
	ErrBadPassphrase = errors.New("invalid creation passphrase")
)

// codePattern is a strict full match: join codes must stay typeable on a
// phone keypad, and anything else is rejected before touching the database.
var codePattern = regexp.MustCompile(`^[0-9]{6}$`)

// ValidCode reports whether code is a well-formed 6-digit room code.
func ValidCode(code string) bool {
	return codePattern.MatchString(code)
}

// Store is the single source of truth for rooms, comments, and votes.
// It holds no state of its own; every read goes to the database so that
// independently polling clients converge without coordination.
type Store struct {
	db      *sql.DB
	dialect string
}

func New(conn *sql.DB, dialect string) *Store {
	return &Store{db: conn, dialect: dialect}
}

func (s *Store) q(query string) string {
	return db.Rebind(s.dialect, query)
}

// isUniqueViolation matches the constraint-violation error text of both
// backends (modernc sqlite and lib/pq).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

func splitTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}
