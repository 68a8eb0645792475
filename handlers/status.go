// Copyright (c) 2026 the ScriptHub authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"sync/atomic"

	"github.com/example/scripthub/middleware"
	"github.com/example/scripthub/models"
)

// StatusHandler owns the process-wide online/offline flag. The flag lives in
// an atomic cell, not a package variable; it is volatile and last-write-wins,
// with no durability across restarts or consistency across instances.
type StatusHandler struct {
	current atomic.Value
}

func NewStatusHandler() *StatusHandler {
	h := &StatusHandler{}
	h.current.Store(models.StatusOffline)
	return h
}

// Serve handles GET and POST /status
func (h *StatusHandler) Serve(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{
			Status: h.current.Load().(string),
		})
	case http.MethodPost:
		var req models.SetStatusRequest
		if err := middleware.ParseJSONBody(r, &req); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
			return
		}

		// Anything other than the two known values is ignored.
		if req.Status == models.StatusOnline || req.Status == models.StatusOffline {
			h.current.Store(req.Status)
		}

		middleware.JSONResponse(w, http.StatusOK, models.SetStatusResponse{
			Success: true,
			Status:  h.current.Load().(string),
		})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
