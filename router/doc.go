// Copyright (c) 2026 the ScriptHub authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the ScriptHub API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(conn, cfg)

# Endpoints

Health:

	GET /health

Scripts (one path, dispatched on method + action parameter):

	GET  /scripts                                  - List all scripts, newest first
	GET  /scripts?id={int}                         - One script (404 {} when absent)
	GET  /scripts?action=gameInfo&placeId={int}    - Upstream game lookup
	POST /scripts?action=like&id={int}             - Increment likes
	POST /scripts?action=dislike&id={int}          - Increment dislikes
	POST /scripts (multipart)                      - Submit a script

Status flag:

	GET  /status - Current online/offline flag
	POST /status - Set the flag

Uploads:

	GET /uploads/{key} - Stored thumbnail bytes

# Handler Initialization

The router wires the store, blob store and game-info client into the
handlers:

	scripts := store.New(conn, db.Dialect(cfg.DatabaseType))
	uploads := blob.NewFileStore(cfg.BlobDir, cfg.BlobBaseURL)
	games := gameinfo.NewClient(cfg.GamesAPIURL)
*/
package router
