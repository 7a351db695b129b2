package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection. The default DSN is
// ":memory:", so registry state resets on restart just like the map-backed
// store.
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// An in-memory database vanishes when its last connection closes, so
	// keep a single connection for the process lifetime.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the registry schema.
func (db *DB) RunMigrations() error {
	migration := `
-- Activities table; name is the registry key
CREATE TABLE activities (
    name TEXT PRIMARY KEY,
    description TEXT NOT NULL,
    schedule TEXT NOT NULL,
    max_participants INTEGER NOT NULL
);

-- Participants; position preserves signup order
CREATE TABLE participants (
    activity_name TEXT NOT NULL,
    email TEXT NOT NULL,
    position INTEGER NOT NULL,
    PRIMARY KEY (activity_name, email),
    FOREIGN KEY (activity_name) REFERENCES activities(name) ON DELETE CASCADE
);
CREATE INDEX idx_activity_participants ON participants(activity_name, position);
`

	if _, err := db.Exec(migration); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
