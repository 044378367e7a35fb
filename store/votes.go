// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"
	"time"
)

// CastVote records one vote per (room, comment, voter) and bumps the
// comment's counter by exactly one, in a single transaction. The vote-row
// insert is the guard: the composite primary key rejects duplicates at the
// database, so two concurrent casts from the same voter produce exactly one
// recorded vote and one increment. Returns (false, nil) for duplicates,
// empty voter IDs, and comments that no longer exist in the room.
func (s *Store) CastVote(roomCode string, commentID int64, voter string) (bool, error) {
	if voter == "" {
		return false, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(s.q(`
		INSERT INTO votes (room_code, comment_id, voter, created_at)
		VALUES (?, ?, ?, ?)
	`), roomCode, commentID, voter, time.Now().UTC())
	if err != nil {
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to insert vote: %w", err)
	}

	res, err := tx.Exec(s.q(`
		UPDATE comments SET votes = votes + 1 WHERE id = ? AND room_code = ?
	`), commentID, roomCode)
	if err != nil {
		return false, fmt.Errorf("failed to increment votes: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		// Stale client: the comment is gone or never belonged to this
		// room. Roll the vote row back and absorb as a no-op.
		return false, nil
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit vote: %w", err)
	}
	return true, nil
}

// HasVoted is a pure existence check for disabling the vote affordance in
// a client. It must never gate the actual write - CastVote's insert is the
// authoritative guard, this check would race.
func (s *Store) HasVoted(roomCode string, commentID int64, voter string) (bool, error) {
	if voter == "" {
		return false, nil
	}
	var exists bool
	err := s.db.QueryRow(s.q(`
		SELECT EXISTS(
			SELECT 1 FROM votes
			WHERE room_code = ? AND comment_id = ? AND voter = ?
		)
	`), roomCode, commentID, voter).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to query votes: %w", err)
	}
	return exists, nil
}
