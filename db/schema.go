// Copyright (c) 2026 the ScriptHub authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// Dialect selects the schema variant for the configured driver.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// CreateSchema creates the scripts table for the given dialect.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dialect Dialect) error {
	ddl, err := Schema(dialect)
	if err != nil {
		return err
	}
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Schema returns the DDL for the given dialect. The store reuses it for the
// lazy bootstrap path when a read hits a missing table.
func Schema(dialect Dialect) (string, error) {
	switch dialect {
	case Postgres:
		return schemaPostgres, nil
	case SQLite:
		return schemaSQLite, nil
	default:
		return "", fmt.Errorf("unknown database dialect %q", dialect)
	}
}

// The two variants differ only in the primary key generator; everything else
// is portable SQL shared by both engines.
const schemaPostgres = `
CREATE TABLE IF NOT EXISTS scripts (
    id SERIAL PRIMARY KEY,
    title VARCHAR(255) NOT NULL,
    game_icon TEXT,
    game_name VARCHAR(255),
    thumbnail_url TEXT,
    code TEXT NOT NULL,
    author VARCHAR(255) NOT NULL,
    discord TEXT,
    likes INTEGER DEFAULT 0,
    dislikes INTEGER DEFAULT 0,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_scripts_created_at ON scripts(created_at);
`

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS scripts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    game_icon TEXT,
    game_name TEXT,
    thumbnail_url TEXT,
    code TEXT NOT NULL,
    author TEXT NOT NULL,
    discord TEXT,
    likes INTEGER DEFAULT 0,
    dislikes INTEGER DEFAULT 0,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_scripts_created_at ON scripts(created_at);
`
