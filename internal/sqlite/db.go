package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection and the listing change feed.
type DB struct {
	*sql.DB
	listingChanges *broadcaster
}

// New creates a new SQLite database connection.
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{DB: db, listingChanges: newBroadcaster()}, nil
}

// RunMigrations creates the schema.
func (db *DB) RunMigrations() error {
	migration := `
-- Users collection
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL,
    role TEXT NOT NULL,
    created_at TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);

-- Listings collection
CREATE TABLE IF NOT EXISTS listings (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    email TEXT,
    title TEXT NOT NULL,
    sector TEXT,
    block TEXT,
    type TEXT NOT NULL CHECK(type IN ('Sale', 'Rent')),
    price REAL NOT NULL DEFAULT 0,
    bedrooms INTEGER NOT NULL DEFAULT 0,
    bathrooms INTEGER NOT NULL DEFAULT 0,
    size_marla REAL NOT NULL DEFAULT 0,
    visibility TEXT NOT NULL CHECK(visibility IN ('Public', 'Private')),
    status TEXT NOT NULL CHECK(status IN ('Available', 'Sold', 'Rented')),
    created_at TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_listings_owner ON listings(owner_id);
CREATE INDEX IF NOT EXISTS idx_listings_visibility ON listings(visibility);

-- Predictions collection
CREATE TABLE IF NOT EXISTS predictions (
    id TEXT PRIMARY KEY,
    location TEXT,
    predicted_price REAL NOT NULL,
    features TEXT NOT NULL DEFAULT '{}',
    created_at TIMESTAMP
);
`
	if _, err := db.Exec(migration); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
