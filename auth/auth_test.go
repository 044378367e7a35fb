// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import "testing"

func TestCheckCreatePass(t *testing.T) {
	if !CheckCreatePass("0731", "0731") {
		t.Error("Matching passphrase should pass")
	}
	if CheckCreatePass("0000", "0731") {
		t.Error("Wrong passphrase should fail")
	}
	if CheckCreatePass("", "0731") {
		t.Error("Empty supplied passphrase should fail")
	}
	if CheckCreatePass("073", "0731") {
		t.Error("Prefix of the passphrase should fail")
	}
}

func TestCheckPin(t *testing.T) {
	if !CheckPin("", "") {
		t.Error("Room without a PIN should admit everyone")
	}
	if !CheckPin("", "anything") {
		t.Error("Room without a PIN should admit everyone")
	}
	if !CheckPin("4444", "4444") {
		t.Error("Matching PIN should pass")
	}
	if CheckPin("4444", "1234") {
		t.Error("Wrong PIN should fail")
	}
	if CheckPin("4444", "") {
		t.Error("Missing PIN should fail when one is set")
	}
}

func TestNewVoterID(t *testing.T) {
	a := NewVoterID()
	b := NewVoterID()
	if a == "" || b == "" {
		t.Fatal("Voter IDs must be non-empty")
	}
	if a == b {
		t.Error("Voter IDs must be unique per call")
	}
}
