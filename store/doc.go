// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements the room/comment/vote consistency core.

The store is the single source of truth. It holds no in-process state:
every client poll recomputes its view from the database, which is what
lets an arbitrary number of independently polling participants,
organizers, and projectors converge without a push channel.

# Rooms

	code, err := st.CreateRoom(title, adminPin, desiredCode)
	room, err := st.GetRoom(code)
	st.SetClosed(code, true)
	st.SetFontScale(code, 1.3)

Codes are exactly 6 digits, validated with a strict full match before any
row lookup. Creation relies on the primary key, not a pre-check, so
concurrent creations of one code cannot both succeed.

# Comments

	st.AddComment(code, author, content)
	comments, err := st.ListComments(code, keyword, includeHidden)
	st.TagComment(id, "mic")
	st.SetHidden(id, true)

Listing order is the canonical popularity order: votes descending, then
created_at descending, then id descending. It is deterministic for a
given stored state, which the rotation logic depends on.

AddComment, TagComment, and SetHidden absorb stale targets (missing room,
closed room, deleted comment) as silent no-ops with an applied flag,
keeping retries from polling clients safe.

# Votes

	recorded, err := st.CastVote(code, commentID, voter)
	voted, err := st.HasVoted(code, commentID, voter)

CastVote is the one operation where a race is a correctness bug: the vote
row insert and the counter increment run in a single transaction, and the
composite primary key on votes is the authoritative duplicate guard. N
concurrent casts from one voter yield exactly one row and one increment.

# Focus

	st.SetFocus(code, &commentID)
	st.ClearFocus(code)
	comment, focused, err := st.ResolveFocus(room)
	id, rotated, err := st.AutoRotate(code, time.Now().UTC(), 8, 20)

ResolveFocus never returns a hidden comment. AutoRotate is a pure
function of the wall clock and the popularity order, so independent
projectors converge on the same focused comment with no coordination.

# Errors

Sentinels, matched with errors.Is:

	ErrNotFound      - unknown room or comment on a read path
	ErrCodeTaken     - room code already in use at creation
	ErrBadCode       - code is not exactly 6 digits
	ErrBadPassphrase - creation passphrase mismatch (used by handlers)
*/
package store
