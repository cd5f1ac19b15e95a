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

	"github.com/lankacompass/server/auth"
	"github.com/lankacompass/server/cliparse"
	"github.com/lankacompass/server/compass"
	"github.com/lankacompass/server/db"
)

// TestIdentifierSalt is the salt used by GetTestConfig
const TestIdentifierSalt = "test-identifier-salt"

// SetupTestDB creates a fresh sqlite database with the full schema.
// Each test gets its own file under t.TempDir().
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := GetTestConfig()
	cfg.DatabaseURL = filepath.Join(t.TempDir(), "compass_test.db")

	conn, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3318,
		DatabaseURL:    "compass_test.db",
		DatabaseType:   cliparse.DatabaseSQLite,
		IdentifierSalt: TestIdentifierSalt,
		WriteRate:      1000,
		WriteBurst:     1000,
	}
}

// CreateTestResult stores a user result and returns its ID.
// createdAt orders results; pass distinct times for deterministic listings.
func CreateTestResult(t *testing.T, conn *sql.DB, name string, economic, social float64, createdAt time.Time) string {
	t.Helper()

	id := auth.NewID()
	quadrant := compass.GetQuadrant(economic, social)
	_, err := conn.Exec(`
		INSERT INTO user_results (id, name, economic_score, social_score, quadrant, avatar, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, id, name, economic, social, string(quadrant), compass.DefaultAvatar, createdAt.UTC())
	if err != nil {
		t.Fatalf("Failed to create test result: %v", err)
	}

	return id
}

// CreateTestSuggestion stores a suggestion for the cell at (x, y) and
// records a vote from voterIdentifier. It returns the suggestion ID.
func CreateTestSuggestion(t *testing.T, conn *sql.DB, name string, x, y int, voterIdentifier string) string {
	t.Helper()

	id := auth.NewID()
	pos := compass.CalculateGridPosition(float64(x), float64(y))
	now := time.Now().UTC()

	_, err := conn.Exec(`
		INSERT INTO politician_suggestions (id, name, quadrant, x_coordinate, y_coordinate, grid_id, votes, suggested_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, 1, $7, $8)
	`, id, name, string(pos.Quadrant), x, y, pos.Block, "User_test00000", now)
	if err != nil {
		t.Fatalf("Failed to create test suggestion: %v", err)
	}

	hash, err := auth.HashIdentifier(voterIdentifier, TestIdentifierSalt)
	if err != nil {
		t.Fatalf("Failed to hash identifier: %v", err)
	}
	_, err = conn.Exec(`
		INSERT INTO suggestion_votes (id, suggestion_id, user_identifier, created_at)
		VALUES ($1, $2, $3, $4)
	`, auth.NewID(), id, hash, now)
	if err != nil {
		t.Fatalf("Failed to record test vote: %v", err)
	}

	return id
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
