// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/ars-canvas/cliparse"
	"github.com/danielhkuo/ars-canvas/db"
)

// SetupTestDB creates a fresh SQLite database with the full schema in the
// test's temp directory. Hermetic: nothing external to the test process.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.sqlite")
	conn, err := db.Open(cliparse.Config{
		DatabaseType: "sqlite",
		DatabaseURL:  "file:" + path,
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseType: "sqlite",
		CreatePass:   "0731",
		BaseURL:      "http://ars.test",
	}
}

// CreateTestRoom inserts a room directly and returns its code.
func CreateTestRoom(t *testing.T, conn *sql.DB, code, adminPin string) string {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO rooms (code, title, created_at, admin_pin)
		VALUES (?, 'Test Session', ?, ?)
	`, code, time.Now().UTC(), adminPin)
	if err != nil {
		t.Fatalf("Failed to create test room: %v", err)
	}

	return code
}

// AddTestComment inserts a comment with a vote count and creation time,
// returning its id. Vote counts and timestamps are set directly so ordering
// tests can stage exact popularity states.
func AddTestComment(t *testing.T, conn *sql.DB, roomCode, content string, votes int, createdAt time.Time) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO comments (room_code, author, content, votes, created_at)
		VALUES (?, '', ?, ?, ?)
		RETURNING id
	`, roomCode, content, votes, createdAt.UTC()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test comment: %v", err)
	}

	return id
}

// CountRows returns the row count of a table.
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s rows: %v", table, err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
