// Copyright (c) 2026 the ScriptHub authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes the scripts table for the configured dialect:

	if err := db.CreateSchema(conn, db.Postgres); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for the table and index.

# Tables

The schema is a single table:

  - scripts: submitted scripts with game metadata, optional thumbnail URL,
    like/dislike counters and creation timestamp

# Dialects

Two DDL variants exist (Postgres, SQLite) differing only in the primary key
generator (SERIAL vs INTEGER PRIMARY KEY AUTOINCREMENT). All query SQL in the
store uses $1 placeholders, which both drivers accept.
*/
package db
