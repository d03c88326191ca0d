package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema.
const schema = `
CREATE TABLE IF NOT EXISTS inventories (
    id                   INTEGER PRIMARY KEY,
    name                 TEXT CHECK (name IS NULL OR length(name) <= 63),
    quantity             INTEGER NOT NULL,
    restock_level        INTEGER NOT NULL,
    condition            TEXT NOT NULL DEFAULT 'NEW' CHECK (condition IN ('NEW', 'OPEN_BOX', 'USED')),
    restocking_available INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// EnsureSchema creates all tables if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
