// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/danielhkuo/ars-canvas/models"
)

// randomCodeAttempts bounds code generation retries. A collision needs two
// rooms on the same 6-digit code out of a million, so hitting the bound in
// practice means the room table is nearly full.
const randomCodeAttempts = 5

// CreateRoom creates a room and returns its code. A caller-supplied code
// must be exactly 6 digits and free; a generated code retries on collision.
// Uniqueness is enforced by the primary key, not by a pre-check, so two
// concurrent creations of the same code cannot both succeed.
func (s *Store) CreateRoom(title, adminPin, desiredCode string) (string, error) {
	if desiredCode != "" {
		if !ValidCode(desiredCode) {
			return "", ErrBadCode
		}
		if err := s.insertRoom(desiredCode, title, adminPin); err != nil {
			return "", err
		}
		return desiredCode, nil
	}

	for range randomCodeAttempts {
		code, err := randomCode()
		if err != nil {
			return "", err
		}
		err = s.insertRoom(code, title, adminPin)
		if err == nil {
			return code, nil
		}
		if !errors.Is(err, ErrCodeTaken) {
			return "", err
		}
	}
	return "", ErrCodeTaken
}

func (s *Store) insertRoom(code, title, adminPin string) error {
	if title == "" {
		title = "Session"
	}
	_, err := s.db.Exec(s.q(`
		INSERT INTO rooms (code, title, created_at, admin_pin)
		VALUES (?, ?, ?, ?)
	`), code, title, time.Now().UTC(), adminPin)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrCodeTaken
		}
		return fmt.Errorf("failed to insert room: %w", err)
	}
	return nil
}

func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("failed to generate room code: %w", err)
	}
	return fmt.Sprintf("%06d", n), nil
}

// GetRoom looks up a room by code. Malformed codes are rejected with
// ErrBadCode before the query runs; unknown codes report ErrNotFound.
func (s *Store) GetRoom(code string) (models.Room, error) {
	if !ValidCode(code) {
		return models.Room{}, ErrBadCode
	}

	var (
		room  models.Room
		focus sql.NullInt64
	)
	err := s.db.QueryRow(s.q(`
		SELECT code, title, created_at, focus_comment_id, admin_pin, is_closed, font_scale
		FROM rooms
		WHERE code = ?
	`), code).Scan(
		&room.Code, &room.Title, &room.CreatedAt, &focus,
		&room.AdminPin, &room.IsClosed, &room.FontScale,
	)
	if err == sql.ErrNoRows {
		return models.Room{}, ErrNotFound
	}
	if err != nil {
		return models.Room{}, fmt.Errorf("failed to query room: %w", err)
	}
	if focus.Valid {
		room.FocusCommentID = &focus.Int64
	}
	return room, nil
}

// SetClosed toggles comment acceptance for a room. Idempotent; the applied
// flag is false when the room does not exist.
func (s *Store) SetClosed(code string, closed bool) (bool, error) {
	res, err := s.db.Exec(s.q(`
		UPDATE rooms SET is_closed = ? WHERE code = ?
	`), closed, code)
	if err != nil {
		return false, fmt.Errorf("failed to update room: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// SetFontScale stores the broadcast display-scale hint. The value is a pure
// display hint; range sanity is the caller's concern.
func (s *Store) SetFontScale(code string, scale float64) (bool, error) {
	res, err := s.db.Exec(s.q(`
		UPDATE rooms SET font_scale = ? WHERE code = ?
	`), scale, code)
	if err != nil {
		return false, fmt.Errorf("failed to update room: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
