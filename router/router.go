// Copyright (c) 2026 the ScriptHub authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/example/scripthub/blob"
	"github.com/example/scripthub/cliparse"
	"github.com/example/scripthub/db"
	"github.com/example/scripthub/gameinfo"
	"github.com/example/scripthub/handlers"
	"github.com/example/scripthub/middleware"
	"github.com/example/scripthub/store"
)

func NewRouter(conn *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	scripts := store.New(conn, db.Dialect(cfg.DatabaseType))
	uploads := blob.NewFileStore(cfg.BlobDir, cfg.BlobBaseURL)
	games := gameinfo.NewClient(cfg.GamesAPIURL)

	scriptHandler := handlers.NewScriptHandler(scripts, uploads, games)
	statusHandler := handlers.NewStatusHandler()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Script resource: method + action parameter dispatch happens inside the
	// handler so unsupported methods get a bare 405.
	mux.HandleFunc("/scripts", middleware.WithLogging(scriptHandler.Serve))

	// Volatile status flag
	mux.HandleFunc("/status", middleware.WithLogging(statusHandler.Serve))

	// Stored thumbnails; serves the URLs the file blob store mints
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.BlobDir))))

	// Root endpoint. {$} pins the pattern to "/" exactly, which also keeps it
	// disjoint from the method-less /scripts and /status registrations.
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ScriptHub API v1"))
	})

	return mux
}
