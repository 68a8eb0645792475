// Copyright (c) 2026 the ScriptHub authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ScriptHub API server.

ScriptHub is a small content-sharing API: it stores user-submitted scripts
(title, code, author, game metadata, optional thumbnail, like/dislike
counters), serves them back as a list or by id, proxies a game metadata
lookup against the upstream games API, and exposes a volatile online/offline
status flag.

# Starting the Server

The server reads configuration from CLI flags, environment variables or a
.env file:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 3319 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string

Optional settings:

  - PORT (-p): Server port (default: 3319)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - BLOB_DIR (--blob-dir): thumbnail directory (default: ./uploads)
  - BLOB_BASE_URL (--blob-url): public prefix for thumbnails (default: /uploads)
  - GAMES_API_URL (--games-api): upstream games API override

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (scripts, status)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain and request/response types
  - store: Script record persistence and counters
  - blob: Thumbnail storage with public URLs
  - gameinfo: Upstream game metadata client
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
