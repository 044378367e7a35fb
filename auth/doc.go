// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the secret checks and voter identity minting.

# Creation Passphrase

Room creation is gated by a single configured passphrase:

	ok := auth.CheckCreatePass(supplied, cfg.CreatePass)

The comparison is constant-time.

# Admin PINs

Each room may carry an organizer PIN. An empty stored PIN means the room
is open to any organizer:

	ok := auth.CheckPin(room.AdminPin, suppliedPin)

# Voter Identities

Voter IDs are opaque strings used only to enforce one-vote-per-comment.
Clients may generate their own; the server mints UUIDs as a convenience:

	voter := auth.NewVoterID()

The core makes no assumption about the format beyond non-emptiness.
*/
package auth
