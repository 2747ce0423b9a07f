package sqlite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	tables := []string{"users", "listings", "predictions"}
	for _, table := range tables {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

// TestForeignKeys verifies that foreign key constraints are enabled
func TestForeignKeys(t *testing.T) {
	db := NewTestDB(t)

	var enabled int
	err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled)
	require.NoError(t, err)
	require.Equal(t, 1, enabled, "foreign keys not enabled")
}

// TestListingConstraints verifies the CHECK constraints on listings
func TestListingConstraints(t *testing.T) {
	db := NewTestDB(t)

	_, err := db.Exec(
		`INSERT INTO listings (id, owner_id, title, type, visibility, status)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		"l1", "u1", "House", "Lease", "Public", "Available")
	require.Error(t, err, "should fail with invalid type")

	_, err = db.Exec(
		`INSERT INTO listings (id, owner_id, title, type, visibility, status)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		"l1", "u1", "House", "Sale", "Hidden", "Available")
	require.Error(t, err, "should fail with invalid visibility")

	_, err = db.Exec(
		`INSERT INTO listings (id, owner_id, title, type, visibility, status)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		"l1", "u1", "House", "Sale", "Public", "Pending")
	require.Error(t, err, "should fail with invalid status")

	_, err = db.Exec(
		`INSERT INTO listings (id, owner_id, title, type, visibility, status)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		"l1", "u1", "House", "Sale", "Public", "Available")
	require.NoError(t, err)
}
