// Copyright (c) 2026 the ScriptHub authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gameinfo

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const (
	// DefaultBaseURL is the upstream games API.
	DefaultBaseURL = "https://games.roblox.com"

	userAgent = "ScriptBlox/1.0"
)

// UpstreamError folds any upstream failure (transport, non-2xx status, or an
// empty data array) into one descriptive error.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string { return e.Message }

// IsUpstream reports whether err is an UpstreamError.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}

// GameInfo is the resolved display metadata for a place.
type GameInfo struct {
	IconURL string
	Name    string
}

// Client resolves place ids against the upstream games API. No retries, no
// caching; transport defaults apply.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{BaseURL: baseURL, HTTPClient: http.DefaultClient}
}

type placeDetails struct {
	UniverseID int64 `json:"universeId"`
}

type gameDetails struct {
	Name               string `json:"name"`
	CreatorID          int64  `json:"creatorId"`
	UniverseAvatarType string `json:"universeAvatarType"`
}

// Resolve maps a place id to its game name and a display icon URL. Two
// sequential upstream calls: place -> universe, then universe -> details.
func (c *Client) Resolve(placeID string) (GameInfo, error) {
	var places struct {
		Data []placeDetails `json:"data"`
	}
	url := fmt.Sprintf("%s/v1/games/multiget-place-details?placeIds=%s", c.BaseURL, placeID)
	if err := c.getJSON(url, &places, "Failed to fetch place details"); err != nil {
		return GameInfo{}, err
	}
	if len(places.Data) == 0 {
		return GameInfo{}, &UpstreamError{Message: "Game not found"}
	}

	var games struct {
		Data []gameDetails `json:"data"`
	}
	url = fmt.Sprintf("%s/v1/games?universeIds=%d", c.BaseURL, places.Data[0].UniverseID)
	if err := c.getJSON(url, &games, "Failed to fetch game details"); err != nil {
		return GameInfo{}, err
	}
	if len(games.Data) == 0 {
		return GameInfo{}, &UpstreamError{Message: "Game details not found"}
	}

	game := games.Data[0]
	return GameInfo{IconURL: iconURL(game), Name: game.Name}, nil
}

// iconURL derives the display icon from the owning entity type. The upstream
// reuses creatorId for both user and group owners; we branch on the avatar
// type and assume nothing else about the id.
func iconURL(game gameDetails) string {
	if game.UniverseAvatarType == "User" {
		return fmt.Sprintf("https://www.roblox.com/headshot-thumbnail/image?userId=%d&width=150&height=150&format=png", game.CreatorID)
	}
	return fmt.Sprintf("https://thumbnails.roblox.com/v1/groups/icon?groupId=%d&size=150x150&format=Png&isCircular=false", game.CreatorID)
}

func (c *Client) getJSON(url string, v interface{}, failMsg string) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return &UpstreamError{Message: failMsg}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &UpstreamError{Message: failMsg}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpstreamError{Message: failMsg}
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &UpstreamError{Message: failMsg}
	}
	return nil
}
