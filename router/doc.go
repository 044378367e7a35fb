// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the ARS Canvas API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Sessions:

	POST /session - Mint an opaque voter identity

Rooms (creation requires the configured passphrase in the body; moderation
requires the room PIN in X-Admin-Pin):

	POST /rooms                   - Create room
	GET  /rooms/{code}            - Room state (join / poll)
	GET  /rooms/{code}/links      - Role-locked share URLs
	POST /rooms/{code}/close      - Toggle comment acceptance
	POST /rooms/{code}/font-scale - Broadcast display scale

Comments:

	POST /rooms/{code}/comments - Submit (silent-accept)
	GET  /rooms/{code}/comments - Popularity-ordered listing
	POST /comments/{id}/tags    - Append a tag
	POST /comments/{id}/hidden  - Hide/unhide

Voting:

	POST /rooms/{code}/votes      - Cast a vote (duplicate-safe)
	GET  /rooms/{code}/votes/{id} - Has this voter voted?

Focus and rotation:

	GET  /rooms/{code}/focus  - Resolve focus (visibility-checked)
	POST /rooms/{code}/focus  - Set or clear focus
	POST /rooms/{code}/rotate - Time-sliced rotation over top comments

Clustering:

	GET /rooms/{code}/clusters - Best-effort theme groups

# Handler Initialization

The router builds the store and injects it into each handler:

	st := store.New(db, cfg.DatabaseType)
	roomHandler := handlers.NewRoomHandler(st, cfg)

All handlers receive the store and configuration.
*/
package router
