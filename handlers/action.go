// Copyright (c) 2026 the ScriptHub authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import "net/http"

// action is the closed set of operations the scripts endpoint performs. The
// (method, query) pair resolves to exactly one action at the boundary; the
// rest of the handler switches on it instead of re-inspecting the request.
type action int

const (
	actionUnsupported action = iota
	actionList
	actionGetOne
	actionGameInfo
	actionLike
	actionDislike
	actionCreate
)

// resolveAction maps an inbound request to its action. A POST whose action
// parameter is neither like nor dislike is treated as a submission, matching
// the original surface.
func resolveAction(r *http.Request) action {
	q := r.URL.Query()
	switch r.Method {
	case http.MethodGet:
		if q.Get("action") == "gameInfo" {
			return actionGameInfo
		}
		if q.Get("id") != "" {
			return actionGetOne
		}
		return actionList
	case http.MethodPost:
		switch q.Get("action") {
		case "like":
			return actionLike
		case "dislike":
			return actionDislike
		}
		return actionCreate
	}
	return actionUnsupported
}
