// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"

	"github.com/google/uuid"
)

// CheckCreatePass reports whether the supplied room-creation passphrase
// matches the configured one. Constant-time to avoid leaking prefix length.
func CheckCreatePass(supplied, configured string) bool {
	return hmac.Equal([]byte(supplied), []byte(configured))
}

// CheckPin reports whether a supplied PIN unlocks a room.
// A room with no stored PIN is open to any organizer.
func CheckPin(storedPin, supplied string) bool {
	if storedPin == "" {
		return true
	}
	return hmac.Equal([]byte(supplied), []byte(storedPin))
}

// NewVoterID mints an opaque voter identity for a client session.
// The core treats voter IDs as opaque strings; clients may also bring
// their own, this is just a convenience for browsers.
func NewVoterID() string {
	return uuid.NewString()
}
