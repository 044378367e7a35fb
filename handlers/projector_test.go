// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/ars-canvas/models"
	"github.com/danielhkuo/ars-canvas/store"
	"github.com/danielhkuo/ars-canvas/testutil"
)

func setupProjectorHandler(t *testing.T) (*ProjectorHandler, *store.Store, *sql.DB) {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	st := store.New(conn, "sqlite")
	return NewProjectorHandler(st, testutil.GetTestConfig()), st, conn
}

func getFocus(t *testing.T, h *ProjectorHandler, code string) models.FocusResponse {
	t.Helper()
	req := testutil.MakeRequest("GET", "/rooms/"+code+"/focus", nil, nil)
	req.SetPathValue("code", code)
	w := httptest.NewRecorder()
	h.GetFocus(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.FocusResponse
	testutil.AssertJSON(t, w, &resp)
	return resp
}

func TestFocusLifecycle(t *testing.T) {
	h, st, conn := setupProjectorHandler(t)
	testutil.CreateTestRoom(t, conn, "482913", "4444")
	id := testutil.AddTestComment(t, conn, "482913", "spotlight", 0, time.Now().UTC())

	// No focus initially
	if resp := getFocus(t, h, "482913"); resp.Focused {
		t.Error("New room should have no focus")
	}

	// Organizer sets the focus
	req := testutil.MakeRequest("POST", "/rooms/482913/focus", models.SetFocusRequest{CommentID: &id},
		map[string]string{"X-Admin-Pin": "4444"})
	req.SetPathValue("code", "482913")
	w := httptest.NewRecorder()
	h.SetFocus(w, req)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	resp := getFocus(t, h, "482913")
	if !resp.Focused || resp.Comment == nil || resp.Comment.ID != id {
		t.Errorf("Expected focus on %d, got %+v", id, resp)
	}

	// Hiding the focused comment suppresses it on the projector
	if _, err := st.SetHidden(id, true); err != nil {
		t.Fatalf("SetHidden failed: %v", err)
	}
	if resp := getFocus(t, h, "482913"); resp.Focused {
		t.Error("Hidden comment must read as no focus")
	}

	// Null comment_id clears the pointer
	req = testutil.MakeRequest("POST", "/rooms/482913/focus", models.SetFocusRequest{CommentID: nil},
		map[string]string{"X-Admin-Pin": "4444"})
	req.SetPathValue("code", "482913")
	w = httptest.NewRecorder()
	h.SetFocus(w, req)
	testutil.AssertStatus(t, w, http.StatusNoContent)
}

func TestSetFocusRejections(t *testing.T) {
	h, _, conn := setupProjectorHandler(t)
	testutil.CreateTestRoom(t, conn, "482913", "4444")
	testutil.CreateTestRoom(t, conn, "555555", "")
	foreign := testutil.AddTestComment(t, conn, "555555", "other room", 0, time.Now().UTC())

	// Wrong PIN
	id := foreign
	req := testutil.MakeRequest("POST", "/rooms/482913/focus", models.SetFocusRequest{CommentID: &id},
		map[string]string{"X-Admin-Pin": "0000"})
	req.SetPathValue("code", "482913")
	w := httptest.NewRecorder()
	h.SetFocus(w, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	// Comment from another room
	req = testutil.MakeRequest("POST", "/rooms/482913/focus", models.SetFocusRequest{CommentID: &id},
		map[string]string{"X-Admin-Pin": "4444"})
	req.SetPathValue("code", "482913")
	w = httptest.NewRecorder()
	h.SetFocus(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

// TestRotateEndpoint pins the handler clock and checks that two projectors
// polling in the same time slice land on the same comment.
func TestRotateEndpoint(t *testing.T) {
	h, _, conn := setupProjectorHandler(t)
	testutil.CreateTestRoom(t, conn, "482913", "")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	top := testutil.AddTestComment(t, conn, "482913", "top", 10, base)
	second := testutil.AddTestComment(t, conn, "482913", "second", 5, base)

	// 2400/8 = 300, 300 % 2 = 0: slice 0 picks the top comment
	h.now = func() time.Time { return time.Unix(2400, 0) }

	rotate := func() models.RotateResponse {
		req := testutil.MakeRequest("POST", "/rooms/482913/rotate", nil, nil)
		req.SetPathValue("code", "482913")
		w := httptest.NewRecorder()
		h.Rotate(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.RotateResponse
		testutil.AssertJSON(t, w, &resp)
		return resp
	}

	a := rotate()
	b := rotate()
	if !a.Rotated || !b.Rotated {
		t.Fatal("Expected rotation to apply")
	}
	if a.CommentID != top || b.CommentID != top {
		t.Errorf("Same slice must pick the top comment %d, got %d and %d", top, a.CommentID, b.CommentID)
	}

	// Next slice advances to the runner-up
	h.now = func() time.Time { return time.Unix(2408, 0) }
	if resp := rotate(); resp.CommentID != second {
		t.Errorf("Expected slice 1 to pick %d, got %d", second, resp.CommentID)
	}

	// The rotation is visible through the focus read path
	resp := getFocus(t, h, "482913")
	if !resp.Focused || resp.Comment.ID != second {
		t.Errorf("Expected focus on %d after rotation, got %+v", second, resp)
	}
}

func TestRotateEmptyRoom(t *testing.T) {
	h, _, conn := setupProjectorHandler(t)
	testutil.CreateTestRoom(t, conn, "482913", "")

	req := testutil.MakeRequest("POST", "/rooms/482913/rotate", nil, nil)
	req.SetPathValue("code", "482913")
	w := httptest.NewRecorder()
	h.Rotate(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.RotateResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Rotated {
		t.Error("Empty room should not rotate")
	}
}
