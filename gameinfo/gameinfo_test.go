// Copyright (c) 2026 the ScriptHub authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gameinfo

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// fakeUpstream serves the two games API endpoints with canned JSON.
func fakeUpstream(t *testing.T, placeBody, gameBody string, status int) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "ScriptBlox/1.0" {
			t.Errorf("Expected identifying User-Agent, got '%s'", got)
		}

		w.WriteHeader(status)
		if strings.HasPrefix(r.URL.Path, "/v1/games/multiget-place-details") {
			fmt.Fprint(w, placeBody)
			return
		}
		fmt.Fprint(w, gameBody)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestResolve_UserOwnedGame(t *testing.T) {
	srv := fakeUpstream(t,
		`{"data":[{"universeId":777}]}`,
		`{"data":[{"name":"Tower of Hell","creatorId":42,"universeAvatarType":"User"}]}`,
		http.StatusOK,
	)

	c := NewClient(srv.URL)
	info, err := c.Resolve("123456")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if info.Name != "Tower of Hell" {
		t.Errorf("Expected name 'Tower of Hell', got '%s'", info.Name)
	}
	want := "https://www.roblox.com/headshot-thumbnail/image?userId=42&width=150&height=150&format=png"
	if info.IconURL != want {
		t.Errorf("Expected head-shot icon URL, got '%s'", info.IconURL)
	}
}

func TestResolve_GroupOwnedGame(t *testing.T) {
	srv := fakeUpstream(t,
		`{"data":[{"universeId":777}]}`,
		`{"data":[{"name":"Adopt Me","creatorId":9001,"universeAvatarType":"Group"}]}`,
		http.StatusOK,
	)

	c := NewClient(srv.URL)
	info, err := c.Resolve("123456")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	want := "https://thumbnails.roblox.com/v1/groups/icon?groupId=9001&size=150x150&format=Png&isCircular=false"
	if info.IconURL != want {
		t.Errorf("Expected group icon URL, got '%s'", info.IconURL)
	}
}

func TestResolve_EmptyPlaceData(t *testing.T) {
	srv := fakeUpstream(t, `{"data":[]}`, `{"data":[]}`, http.StatusOK)

	c := NewClient(srv.URL)
	_, err := c.Resolve("123456")
	if err == nil {
		t.Fatal("Expected an error for empty place data")
	}
	if !IsUpstream(err) {
		t.Errorf("Expected UpstreamError, got %T", err)
	}
	if err.Error() != "Game not found" {
		t.Errorf("Expected 'Game not found', got '%s'", err.Error())
	}
}

func TestResolve_EmptyGameData(t *testing.T) {
	srv := fakeUpstream(t, `{"data":[{"universeId":777}]}`, `{"data":[]}`, http.StatusOK)

	c := NewClient(srv.URL)
	_, err := c.Resolve("123456")
	if err == nil {
		t.Fatal("Expected an error for empty game data")
	}
	if err.Error() != "Game details not found" {
		t.Errorf("Expected 'Game details not found', got '%s'", err.Error())
	}
}

func TestResolve_UpstreamFailure(t *testing.T) {
	srv := fakeUpstream(t, ``, ``, http.StatusBadGateway)

	c := NewClient(srv.URL)
	_, err := c.Resolve("123456")
	if err == nil {
		t.Fatal("Expected an error for upstream 502")
	}
	if !IsUpstream(err) {
		t.Errorf("Expected UpstreamError, got %T", err)
	}
	if err.Error() != "Failed to fetch place details" {
		t.Errorf("Expected 'Failed to fetch place details', got '%s'", err.Error())
	}
}

func TestResolve_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL)
	_, err := c.Resolve("123456")
	if !IsUpstream(err) {
		t.Errorf("Expected UpstreamError for unreachable upstream, got %v", err)
	}
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	c := NewClient("")
	if c.BaseURL != DefaultBaseURL {
		t.Errorf("Expected default base URL, got '%s'", c.BaseURL)
	}
}
