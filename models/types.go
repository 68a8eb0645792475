// Copyright (c) 2026 the ScriptHub authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Status flag values
const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

// Counter names accepted by the vote endpoints
const (
	CounterLikes    = "likes"
	CounterDislikes = "dislikes"
)

// Domain types

// Script is one submitted code snippet and its metadata. JSON field names
// mirror the column names so rows serialize the same way the store keeps them.
type Script struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	GameIcon     string    `json:"game_icon"`
	GameName     string    `json:"game_name"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Code         string    `json:"code"`
	Author       string    `json:"author"`
	Discord      *string   `json:"discord"`
	Likes        int       `json:"likes"`
	Dislikes     int       `json:"dislikes"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateScript carries the fields fixed at creation time. Discord stays nil
// when the submitter left it out; ThumbnailURL is "" when no file was
// uploaded.
type CreateScript struct {
	Title        string
	GameIcon     string
	GameName     string
	ThumbnailURL string
	Code         string
	Author       string
	Discord      *string
}

// Response types

type PublishResponse struct {
	Message string `json:"message"`
}

type GameInfoResponse struct {
	GameIcon string `json:"gameIcon"`
	GameName string `json:"gameName"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type SetStatusRequest struct {
	Status string `json:"status"`
}

type SetStatusResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
