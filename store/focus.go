// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"
	"time"

	"github.com/danielhkuo/ars-canvas/models"
)

// SetFocus points a room at a comment for prominent display, or clears the
// pointer when commentID is nil. The comment must belong to the room;
// pointing at a missing or foreign comment reports ErrNotFound.
func (s *Store) SetFocus(roomCode string, commentID *int64) error {
	if commentID != nil {
		var exists bool
		err := s.db.QueryRow(s.q(`
			SELECT EXISTS(
				SELECT 1 FROM comments WHERE id = ? AND room_code = ?
			)
		`), *commentID, roomCode).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to query comment: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
	}
	return s.writeFocus(roomCode, commentID)
}

// ClearFocus removes a room's focus pointer.
func (s *Store) ClearFocus(roomCode string) error {
	return s.writeFocus(roomCode, nil)
}

func (s *Store) writeFocus(roomCode string, commentID *int64) error {
	var value any
	if commentID != nil {
		value = *commentID
	}
	res, err := s.db.Exec(s.q(`
		UPDATE rooms SET focus_comment_id = ? WHERE code = ?
	`), value, roomCode)
	if err != nil {
		return fmt.Errorf("failed to update focus: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ResolveFocus returns the room's focused comment only if it still exists,
// belongs to the room, and is not hidden. A dangling or hidden pointer
// reads as "no focus" - hidden comments never reach the projector even
// when the pointer is set.
func (s *Store) ResolveFocus(room models.Room) (models.Comment, bool, error) {
	if room.FocusCommentID == nil {
		return models.Comment{}, false, nil
	}
	c, err := s.GetComment(*room.FocusCommentID)
	if err == ErrNotFound {
		return models.Comment{}, false, nil
	}
	if err != nil {
		return models.Comment{}, false, err
	}
	if c.Hidden || c.RoomCode != room.Code {
		return models.Comment{}, false, nil
	}
	return c, true, nil
}

// AutoRotate advances the focus through the top comments as a pure function
// of wall-clock time: index = (unix / period) mod min(topN, visible). Every
// projector that polls recomputes the same index from the same clock and the
// same ordering, so independent clients converge without a scheduler.
// Returns (0, false) when the room has no visible comments.
func (s *Store) AutoRotate(roomCode string, now time.Time, periodSeconds, topN int) (int64, bool, error) {
	if periodSeconds <= 0 {
		periodSeconds = models.DefaultRotatePeriodSeconds
	}
	if topN <= 0 {
		topN = models.DefaultRotateTopN
	}

	comments, err := s.ListComments(roomCode, "", false)
	if err != nil {
		return 0, false, err
	}
	if len(comments) == 0 {
		return 0, false, nil
	}

	window := min(topN, len(comments))
	idx := int((now.Unix() / int64(periodSeconds)) % int64(window))
	id := comments[idx].ID

	if err := s.writeFocus(roomCode, &id); err != nil {
		if err == ErrNotFound {
			// Room vanished between the listing and the write.
			return 0, false, nil
		}
		return 0, false, err
	}
	return id, true, nil
}
