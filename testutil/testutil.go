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
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lmk-app/decide-server/ai"
	"github.com/lmk-app/decide-server/auth"
	"github.com/lmk-app/decide-server/db"
)

// SetupTestDB creates a fresh SQLite database under t.TempDir with the
// full schema. The file is removed with the temp dir when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "decide_test.db")
	conn, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// One connection serializes writers, so concurrent engine calls contend
	// in the pool instead of tripping SQLITE_BUSY.
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// CreateTestUser inserts a profile row and returns its ID
func CreateTestUser(t *testing.T, conn *sql.DB, fullName string) string {
	t.Helper()

	userID := auth.NewID()
	_, err := conn.Exec(`
		INSERT INTO profile (id, full_name, taste_profile, created_at)
		VALUES ($1, $2, '', $3)
	`, userID, fullName, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return userID
}

// CreateTestGroup inserts a group with the creator as its first member
func CreateTestGroup(t *testing.T, conn *sql.DB, creatorID, name string) string {
	t.Helper()

	groupID := auth.NewID()
	now := time.Now().UTC()
	_, err := conn.Exec(`
		INSERT INTO friend_group (id, name, description, creator_id, created_at)
		VALUES ($1, $2, '', $3, $4)
	`, groupID, name, creatorID, now)
	if err != nil {
		t.Fatalf("Failed to create test group: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO group_member (group_id, user_id, joined_at)
		VALUES ($1, $2, $3)
	`, groupID, creatorID, now)
	if err != nil {
		t.Fatalf("Failed to add creator membership: %v", err)
	}

	return groupID
}

// AddTestMember joins a user to a group
func AddTestMember(t *testing.T, conn *sql.DB, groupID, userID string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO group_member (group_id, user_id, joined_at)
		VALUES ($1, $2, $3)
	`, groupID, userID, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to add test member: %v", err)
	}
}

// CreateTestInvite inserts an invite row and returns its ID
// status should be "pending", "accepted", or "rejected"
func CreateTestInvite(t *testing.T, conn *sql.DB, groupID, inviteeID, inviterID, status string) string {
	t.Helper()

	inviteID := auth.NewID()
	_, err := conn.Exec(`
		INSERT INTO group_invite (id, group_id, invited_user_id, invited_by, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, inviteID, groupID, inviteeID, inviterID, status, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test invite: %v", err)
	}

	return inviteID
}

// CreateTestPoll inserts a poll row and returns its ID
func CreateTestPoll(t *testing.T, conn *sql.DB, groupID, creatorID, title, category string) string {
	t.Helper()

	pollID := auth.NewID()
	_, err := conn.Exec(`
		INSERT INTO poll (id, group_id, title, category, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, pollID, groupID, title, category, creatorID, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	return pollID
}

// AddTestOption adds an option to a poll and returns the option ID
func AddTestOption(t *testing.T, conn *sql.DB, pollID, title string, score, position int) string {
	t.Helper()

	optionID := auth.NewID()
	_, err := conn.Exec(`
		INSERT INTO poll_option (id, poll_id, title, description, personalized_score, position)
		VALUES ($1, $2, $3, '', $4, $5)
	`, optionID, pollID, title, score, position)
	if err != nil {
		t.Fatalf("Failed to create test option: %v", err)
	}

	return optionID
}

// CastTestVote inserts a vote row directly
func CastTestVote(t *testing.T, conn *sql.DB, pollID, optionID, userID string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO vote (id, poll_id, option_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, auth.NewID(), pollID, optionID, userID, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to cast test vote: %v", err)
	}
}

// AddTestRating inserts a rating row for a user
func AddTestRating(t *testing.T, conn *sql.DB, userID, category, title string, score float64) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO rating (id, user_id, category, title, score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, auth.NewID(), userID, category, title, score, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test rating: %v", err)
	}
}

// StubSuggester returns canned suggestions (or an error) without any
// network dependency
type StubSuggester struct {
	Suggestions []ai.Suggestion
	Err         error
}

func (s *StubSuggester) SuggestOptions(ctx context.Context, req ai.SuggestionRequest) ([]ai.Suggestion, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Suggestions, nil
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
