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

	"github.com/danielhkuo/quickly-rate/cliparse"
	"github.com/danielhkuo/quickly-rate/db"
	"github.com/danielhkuo/quickly-rate/idgen"
)

// BaseTime anchors fixture timestamps so upload order is deterministic
var BaseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// SetupTestDB creates a fresh in-memory sqlite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := GetTestConfig()
	conn, err := db.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(context.Background(), conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3318,
		DatabaseURL:    ":memory:",
		DatabaseType:   cliparse.DatabaseSQLite,
		PublicBaseURL:  "https://rate.test",
		QRServiceURL:   "https://qr.test/create?data=",
		MaxUploadBytes: 1024 * 1024,
		AMQPExchange:   "quickly-rate.test",
	}
}

// CreateTestEvent inserts an event with the given status and returns its id
// and join code
func CreateTestEvent(t *testing.T, conn *sql.DB, status string) (eventID, joinCode string) {
	t.Helper()

	eventID = idgen.GenerateID()
	for {
		code, err := idgen.GenerateJoinCode()
		if err != nil {
			t.Fatalf("Failed to generate join code: %v", err)
		}
		var n int
		if err := conn.QueryRow(`SELECT COUNT(*) FROM events WHERE qr_code = $1`, code).Scan(&n); err != nil {
			t.Fatalf("Failed to check join code: %v", err)
		}
		if n == 0 {
			joinCode = code
			break
		}
	}

	_, err := conn.Exec(`
		INSERT INTO events (id, name, status, qr_code, current_image_index, created_at)
		VALUES ($1, 'Test Event', $2, $3, 0, $4)
	`, eventID, status, joinCode, BaseTime)
	if err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}

	return eventID, joinCode
}

// AddTestImages adds n images to an event, one second apart, and returns
// their ids in voting order
func AddTestImages(t *testing.T, conn *sql.DB, eventID string, n int) []string {
	t.Helper()

	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := idgen.GenerateID()
		_, err := conn.Exec(`
			INSERT INTO images (id, event_id, url, filename, uploaded_at)
			VALUES ($1, $2, 'data:image/png;base64,AAAA', $3, $4)
		`, id, eventID, "image"+string(rune('A'+i))+".png", BaseTime.Add(time.Duration(i)*time.Second))
		if err != nil {
			t.Fatalf("Failed to create test image: %v", err)
		}
		ids = append(ids, id)
	}

	return ids
}

// AddTestParticipant registers a voter directly in the participants table
func AddTestParticipant(t *testing.T, conn *sql.DB, eventID, voterID string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO participants (id, event_id, voter_id, joined_at)
		VALUES ($1, $2, $3, $4)
	`, idgen.GenerateID(), eventID, voterID, BaseTime)
	if err != nil {
		t.Fatalf("Failed to create test participant: %v", err)
	}
}

// AddTestVote inserts a vote row directly and returns its id
func AddTestVote(t *testing.T, conn *sql.DB, eventID, imageID, voterID string, stars int) string {
	t.Helper()

	id := idgen.GenerateID()
	_, err := conn.Exec(`
		INSERT INTO votes (id, event_id, image_id, voter_id, stars, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, eventID, imageID, voterID, stars, BaseTime)
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return id
}

// SetCurrentIndex moves an event's pointer directly
func SetCurrentIndex(t *testing.T, conn *sql.DB, eventID string, index int) {
	t.Helper()

	if _, err := conn.Exec(`UPDATE events SET current_image_index = $1 WHERE id = $2`, index, eventID); err != nil {
		t.Fatalf("Failed to set current index: %v", err)
	}
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
