package db

import (
	"database/sql"
	"fmt"
)

// migrations is a list of SQL statements applied in order after schema
// creation. The number of applied migrations is recorded in settings
// under schema_version, so each migration runs exactly once. Append new
// migrations at the end.
var migrations = []string{
	// Migration 1: index for the name filter, the most common list query.
	`CREATE INDEX IF NOT EXISTS idx_inventories_name ON inventories(name)`,
}

// Migrate ensures the schema exists and applies any pending migrations.
func Migrate(db *sql.DB) error {
	if err := EnsureSchema(db); err != nil {
		return err
	}

	var version int
	err := db.QueryRow(`SELECT value FROM settings WHERE key = 'schema_version'`).Scan(&version)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for i := version; i < len(migrations); i++ {
		if _, err := db.Exec(migrations[i]); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	_, err = db.Exec(
		`INSERT INTO settings (key, value) VALUES ('schema_version', ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		len(migrations),
	)
	if err != nil {
		return fmt.Errorf("recording schema version: %w", err)
	}
	return nil
}
