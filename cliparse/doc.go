// Copyright (c) 2026 the ScriptHub authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first; flags and real
environment variables take precedence over it.

# Config Fields

  - Port: Server listen port (default: 3319)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - BlobDir: Directory for uploaded thumbnails (default: ./uploads)
  - BlobBaseURL: Public URL prefix for thumbnails (default: /uploads)
  - GamesAPIURL: Upstream games API override (default: production upstream)

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	-blob-dir   Thumbnail directory
	-blob-url   Thumbnail URL prefix
	-games-api  Games API base URL

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	BLOB_DIR      → -blob-dir
	BLOB_BASE_URL → -blob-url
	GAMES_API_URL → -games-api

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if DATABASE_URL is missing or DATABASE_TYPE is
not one of sqlite/postgres.

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := sql.Open("sqlite", cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(conn, cfg)
*/
package cliparse
