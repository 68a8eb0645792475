// Copyright (c) 2026 the ScriptHub authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the ScriptHub API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - ScriptHandler: the whole script surface (list, get, submit, votes,
    game info lookup), built from the store, a blob.Uploader and a
    gameinfo.Client
  - StatusHandler: the volatile online/offline flag

# Action Dispatch

The scripts endpoint multiplexes several operations over one path using the
HTTP method and query parameters. resolveAction (action.go) turns the
request into one value of a closed action set at the boundary:

	List | GetOne | GameInfo | Like | Dislike | Create

Serve switches on that value once; no string comparisons are scattered
through the handling logic.

# Submission Flow

POST /scripts parses the multipart form, validates the five required text
fields before any side effect, uploads the optional thumbnail, then inserts
the record. If the insert fails after a successful upload the handler
deletes the uploaded blob. Multipart temp files are removed when the
handler returns.

# Voting

POST /scripts?action=like&id=N (or dislike) increments the counter with a
single atomic statement in the store and returns {"like": n} / {"dislike": n}.
An unknown id yields 404 with an empty JSON object.
*/
package handlers
