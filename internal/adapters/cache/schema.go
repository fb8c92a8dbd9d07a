package cache

import (
	"database/sql"
	"errors"
	"fmt"
)

// InitSqliteSchema creates the local geocode cache table.
func InitSqliteSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        coord_key TEXT PRIMARY KEY,
        street TEXT NOT NULL,
        city TEXT NOT NULL,
        country TEXT NOT NULL,
        full_address TEXT NOT NULL
    );
	`

	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init schema: create geocode_cache: %w", err)
	}

	return nil
}

// InitPostgresSchema creates the shared geocode cache table.
// Invoked by cmd/dbtool against DATABASE_URL.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        coord_key TEXT PRIMARY KEY,
        street TEXT NOT NULL,
        city TEXT NOT NULL,
        country TEXT NOT NULL,
        full_address TEXT NOT NULL
    );
	`

	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init schema: create geocode_cache: %w", err)
	}

	return nil
}
