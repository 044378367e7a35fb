// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the ARS Canvas API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - RoomHandler: Room lifecycle (create, join, close, display settings)
  - CommentHandler: Submission, listing, tagging, hiding
  - VotingHandler: Session minting, vote casting, vote checks
  - ProjectorHandler: Focus resolution, manual focus, auto-rotation
  - ClusterHandler: Best-effort comment clustering

Handlers are created via constructor functions that accept *store.Store
and Config:

	roomHandler := handlers.NewRoomHandler(st, cfg)

# Roles

Three roles poll the same endpoints on their own timers:

Participants submit and vote:

	POST /rooms/{code}/comments → AddComment
	POST /rooms/{code}/votes    → CastVote
	GET  /rooms/{code}/comments → ListComments

Organizers moderate (PIN via X-Admin-Pin header):

	POST /comments/{id}/tags       → TagComment
	POST /comments/{id}/hidden     → SetHidden
	POST /rooms/{code}/close       → SetClosed
	POST /rooms/{code}/focus       → SetFocus
	POST /rooms/{code}/font-scale  → SetFontScale

Projectors display:

	GET  /rooms/{code}/focus  → GetFocus
	POST /rooms/{code}/rotate → Rotate

# Silent No-Ops

Moderation and submission writes addressed at stale targets (a comment
hidden since the last poll, a room closed mid-submission) acknowledge with
204 instead of erroring. Polling clients are expected to be slightly
stale, and their retries must be safe. Creation-time violations (bad
passphrase, malformed code, code collision) are hard failures.

# Clustering

GetClusters groups the visible comments by theme via the pluggable
cluster.Clusterer. Failures degrade to available=false and never touch
comment, vote, or room state.
*/
package handlers
