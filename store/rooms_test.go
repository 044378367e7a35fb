// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"testing"

	"github.com/danielhkuo/ars-canvas/testutil"
)

func TestCreateRoomWithDesiredCode(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := New(conn, "sqlite")

	code, err := st.CreateRoom("Town Hall", "4444", "482913")
	if err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}
	if code != "482913" {
		t.Errorf("Expected code 482913, got %s", code)
	}

	room, err := st.GetRoom("482913")
	if err != nil {
		t.Fatalf("GetRoom failed: %v", err)
	}
	if room.Title != "Town Hall" {
		t.Errorf("Expected title 'Town Hall', got %q", room.Title)
	}
	if room.AdminPin != "4444" {
		t.Errorf("Expected pin to be stored, got %q", room.AdminPin)
	}
	if room.IsClosed {
		t.Error("New room should be open")
	}
	if room.FontScale != 1.15 {
		t.Errorf("Expected default font scale 1.15, got %v", room.FontScale)
	}
	if room.FocusCommentID != nil {
		t.Error("New room should have no focus")
	}
}

func TestCreateRoomDuplicateCode(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := New(conn, "sqlite")

	if _, err := st.CreateRoom("First", "", "111111"); err != nil {
		t.Fatalf("First CreateRoom failed: %v", err)
	}

	_, err := st.CreateRoom("Second", "", "111111")
	if !errors.Is(err, ErrCodeTaken) {
		t.Errorf("Expected ErrCodeTaken, got %v", err)
	}

	// The losing creation must not have overwritten the first room
	room, err := st.GetRoom("111111")
	if err != nil {
		t.Fatalf("GetRoom failed: %v", err)
	}
	if room.Title != "First" {
		t.Errorf("Expected original title to survive, got %q", room.Title)
	}
}

func TestCreateRoomRejectsMalformedCodes(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := New(conn, "sqlite")

	for _, code := range []string{"12345", "1234567", "12a456", "12 456", "１２３４５６", "123456\n"} {
		_, err := st.CreateRoom("Bad", "", code)
		if !errors.Is(err, ErrBadCode) {
			t.Errorf("code %q: expected ErrBadCode, got %v", code, err)
		}
	}

	if n := testutil.CountRows(t, conn, "rooms"); n != 0 {
		t.Errorf("Malformed codes must never reach the store, found %d rooms", n)
	}
}

func TestCreateRoomGeneratesCode(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := New(conn, "sqlite")

	code, err := st.CreateRoom("", "", "")
	if err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}
	if !ValidCode(code) {
		t.Errorf("Generated code %q is not 6 digits", code)
	}

	// Empty title falls back to the default
	room, err := st.GetRoom(code)
	if err != nil {
		t.Fatalf("GetRoom failed: %v", err)
	}
	if room.Title != "Session" {
		t.Errorf("Expected default title 'Session', got %q", room.Title)
	}
}

func TestGetRoomNotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := New(conn, "sqlite")

	_, err := st.GetRoom("999999")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	_, err = st.GetRoom("not-a-code")
	if !errors.Is(err, ErrBadCode) {
		t.Errorf("Expected ErrBadCode, got %v", err)
	}
}

func TestSetClosedIdempotent(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := New(conn, "sqlite")
	code := testutil.CreateTestRoom(t, conn, "222222", "")

	for i := 0; i < 2; i++ {
		applied, err := st.SetClosed(code, true)
		if err != nil {
			t.Fatalf("SetClosed failed: %v", err)
		}
		if !applied {
			t.Error("Expected applied=true for an existing room")
		}
	}

	room, err := st.GetRoom(code)
	if err != nil {
		t.Fatalf("GetRoom failed: %v", err)
	}
	if !room.IsClosed {
		t.Error("Room should be closed after two toggles to true")
	}

	// Unknown room is a no-op
	applied, err := st.SetClosed("999999", true)
	if err != nil {
		t.Fatalf("SetClosed on unknown room failed: %v", err)
	}
	if applied {
		t.Error("Expected applied=false for an unknown room")
	}
}

func TestSetFontScale(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := New(conn, "sqlite")
	code := testutil.CreateTestRoom(t, conn, "333333", "")

	applied, err := st.SetFontScale(code, 1.5)
	if err != nil {
		t.Fatalf("SetFontScale failed: %v", err)
	}
	if !applied {
		t.Error("Expected applied=true")
	}

	room, err := st.GetRoom(code)
	if err != nil {
		t.Fatalf("GetRoom failed: %v", err)
	}
	if room.FontScale != 1.5 {
		t.Errorf("Expected font scale 1.5, got %v", room.FontScale)
	}
}
