// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/fitroom/cliparse"
	"github.com/danielhkuo/fitroom/db"
	"github.com/danielhkuo/fitroom/session"
	"github.com/danielhkuo/fitroom/store"
)

// SetupTestDB opens a fresh in-memory sqlite database with the full
// schema applied.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Every pooled connection would get its own empty :memory: database
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.Migrate(conn); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          5000,
		DatabasePath:  ":memory:",
		SessionSecret: "test-session-secret",
		SessionTTL:    time.Hour,
		AssetsDir:     ".",
		ModelsDir:     "models",
	}
}

// NewTestSessions returns a session manager matching GetTestConfig
func NewTestSessions() *session.Manager {
	cfg := GetTestConfig()
	return session.NewManager(cfg.SessionSecret, cfg.SessionTTL)
}

// CreateTestUser registers a user directly through the store and
// returns its id
func CreateTestUser(t *testing.T, conn *sql.DB, username, password string) int64 {
	t.Helper()

	id, err := store.New(conn).CreateUser(context.Background(), username, password)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return id
}

// SessionCookie returns a valid session cookie for the user
func SessionCookie(t *testing.T, userID int64, username string) *http.Cookie {
	t.Helper()

	w := httptest.NewRecorder()
	NewTestSessions().Issue(w, userID, username)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("Expected exactly one session cookie, got %d", len(cookies))
	}

	return cookies[0]
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, cookies ...*http.Cookie) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for _, c := range cookies {
		req.AddCookie(c)
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

// AssertRedirect checks for a 302 to the expected location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusFound {
		t.Errorf("Expected status 302, got %d. Body: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %q, got %q", location, got)
	}
}
