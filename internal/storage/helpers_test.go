// ABOUTME: Shared test helpers for storage tests.
// ABOUTME: Provides setupTestDB and a seeded test user.
package storage

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(dbPath, zap.NewNop())
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestUser(t *testing.T, db *DB) int64 {
	t.Helper()
	id, err := db.CreateUser("Test User", "test@example.com", "hash")
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return id
}

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
