// Package sqlite_test contains integration tests for SQLite repositories.
//
// This file is the single point where the database schema is loaded for
// tests. All test setup uses db.GetSchemaSQL() so tests always run against
// the authoritative schema - do not hardcode CREATE TABLE statements in
// test files.
package sqlite_test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/cadence/internal/db"
	"github.com/example/cadence/internal/ports/secondary"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedClient inserts a test client and returns its ID.
func seedClient(t *testing.T, db *sql.DB, id, name string) string {
	t.Helper()
	if id == "" {
		id = "CLIENT-001"
	}
	if name == "" {
		name = "Test Client"
	}
	_, err := db.Exec("INSERT INTO clients (id, name, email) VALUES (?, ?, 'test@example.com')", id, name)
	if err != nil {
		t.Fatalf("failed to seed client: %v", err)
	}
	return id
}

// seedProject inserts a test project and returns its ID.
func seedProject(t *testing.T, db *sql.DB, id, clientID string, cascadeEnabled bool) string {
	t.Helper()
	if id == "" {
		id = "PROJ-001"
	}
	if clientID == "" {
		clientID = "CLIENT-001"
	}
	_, err := db.Exec(
		"INSERT INTO projects (id, client_id, title, type, cascade_policy_enabled) VALUES (?, ?, 'Test Project', 'landingpage', ?)",
		id, clientID, cascadeEnabled,
	)
	if err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}
	return id
}

// seedMilestone inserts a test milestone and returns its ID.
func seedMilestone(t *testing.T, db *sql.DB, rec *secondary.MilestoneRecord) string {
	t.Helper()
	if rec.ID == "" {
		rec.ID = "PROJ-001-M01"
	}
	if rec.ProjectID == "" {
		rec.ProjectID = "PROJ-001"
	}
	if rec.Title == "" {
		rec.Title = "Test Milestone"
	}
	if rec.Status == "" {
		rec.Status = "open"
	}
	if rec.Owner == "" {
		rec.Owner = "client"
	}
	if rec.Category == "" {
		rec.Category = "content"
	}
	if rec.DueDate.IsZero() {
		rec.DueDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	if rec.OriginalDueDate.IsZero() {
		rec.OriginalDueDate = rec.DueDate
	}
	_, err := db.Exec(
		"INSERT INTO milestones (id, project_id, sequence, title, status, owner, category, due_date, original_due_date) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		rec.ID, rec.ProjectID, rec.Order, rec.Title, rec.Status, rec.Owner, rec.Category, rec.DueDate, rec.OriginalDueDate,
	)
	if err != nil {
		t.Fatalf("failed to seed milestone: %v", err)
	}
	return rec.ID
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
