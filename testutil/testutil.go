// Copyright (c) 2026 the ScriptHub authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/example/scripthub/cliparse"
	"github.com/example/scripthub/db"
)

// SetupTestDB creates a fresh sqlite database with the scripts schema.
// Every test gets its own file under t.TempDir, so there is nothing to
// clean up between tests.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn := SetupBareTestDB(t)
	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

// SetupBareTestDB creates a fresh sqlite database with no schema at all.
// Used by the lazy bootstrap tests.
func SetupBareTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scripthub.db")
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration with a throwaway
// blob directory.
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()

	return cliparse.Config{
		Port:         3319,
		DatabaseURL:  "file:unused",
		DatabaseType: "sqlite",
		BlobDir:      t.TempDir(),
		BlobBaseURL:  "/uploads",
	}
}

// CreateTestScript inserts a script row directly and returns its id.
// created_at is offset so listing order is deterministic across fast inserts.
func CreateTestScript(t *testing.T, conn *sql.DB, title string, createdAt time.Time) int {
	t.Helper()

	var id int
	err := conn.QueryRow(`
		INSERT INTO scripts (title, game_icon, game_name, thumbnail_url, code, author, discord, likes, dislikes, created_at)
		VALUES ($1, 'http://x/i.png', 'Game', '', '--code--', 'tester', NULL, 0, 0, $2)
		RETURNING id
	`, title, createdAt).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test script: %v", err)
	}
	return id
}

// MakeRequest creates an HTTP test request with an optional JSON body
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

// MakeMultipartRequest builds a multipart/form-data POST with the given text
// fields and, when fileName is non-empty, a thumbnail file part.
func MakeMultipartRequest(t *testing.T, path string, fields map[string]string, fileName string, fileBytes []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("Failed to write form field %s: %v", k, err)
		}
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile("thumbnail", fileName)
		if err != nil {
			t.Fatalf("Failed to create file part: %v", err)
		}
		if _, err := io.Copy(fw, bytes.NewReader(fileBytes)); err != nil {
			t.Fatalf("Failed to write file part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
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
