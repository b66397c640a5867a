package db

import (
	"database/sql"
	"testing"
)

// NewTestDB opens a throwaway in-memory database with the full schema in
// place. It is closed automatically when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := EnsureSchema(database); err != nil {
		t.Fatalf("apply schema: %v", err)
	}

	return database
}
