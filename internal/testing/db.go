// Package testing provides test helpers shared across hunter packages.
package testing

import (
	"fmt"
	"os"
	"testing"

	"github.com/aristath/hunter/internal/database"
)

// NewTestDB creates a temporary-file SQLite database and applies the schema
// registered for name (e.g. "reports"). Unknown names yield an empty database.
// The returned cleanup function closes and removes the database.
func NewTestDB(t *testing.T, name string) (*database.DB, func()) {
	t.Helper()

	// A file per test keeps WAL mode and pooled connections isolated
	tmpFile, err := os.CreateTemp("", fmt.Sprintf("test_%s_*.db", name))
	if err != nil {
		t.Fatalf("Failed to create temporary database file: %v", err)
	}
	tmpPath := tmpFile.Name()
	_ = tmpFile.Close()

	db, err := database.New(database.Config{
		Path:    tmpPath,
		Profile: database.ProfileStandard,
		Name:    name,
	})
	if err != nil {
		_ = os.Remove(tmpPath)
		t.Fatalf("Failed to create test database %s: %v", name, err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		_ = os.Remove(tmpPath)
		t.Fatalf("Failed to migrate test database %s: %v", name, err)
	}

	return db, func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: Failed to close test database %s: %v", name, err)
		}
		for _, suffix := range []string{"", "-wal", "-shm"} {
			_ = os.Remove(tmpPath + suffix)
		}
	}
}
