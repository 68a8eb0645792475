// Copyright (c) 2026 the ScriptHub authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Script: one submitted script with game metadata, optional thumbnail URL,
    vote counters and creation timestamp. JSON field names match the column
    names, so records serialize the way they are stored.
  - CreateScript: the fields fixed at creation time. Discord is a pointer
    (nil serializes as null); ThumbnailURL stays "" when no file was
    uploaded.

# Response Types

  - PublishResponse: {"message": "Published"}
  - GameInfoResponse: {"gameIcon": ..., "gameName": ...}
  - StatusResponse / SetStatusResponse: the volatile status flag
  - ErrorResponse: {"error": "message"}, the only error body shape

# Constants

Status flag values (online/offline) and the two counter names
(likes/dislikes) accepted by the vote endpoints.
*/
package models
