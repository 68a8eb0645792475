// Copyright (c) 2026 the ScriptHub authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/example/scripthub/testutil"
)

// TestConcurrentLikes verifies that simultaneous votes on the same script
// all land: with initial likes = 0 and N concurrent requests the final
// count is exactly N.
func TestConcurrentLikes(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	h, _ := newTestHandler(t, conn)

	id := testutil.CreateTestScript(t, conn, "popular", time.Now())

	numVotes := 20
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVotes; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := httptest.NewRequest("POST", "/scripts?action=like&id="+strconv.Itoa(id), nil)
			w := httptest.NewRecorder()

			h.Serve(w, req)

			if w.Code == http.StatusOK {
				successCount.Add(1)
			}
		}()
	}

	wg.Wait()

	// All votes should succeed
	if int(successCount.Load()) != numVotes {
		t.Errorf("Expected %d successful votes, got %d", numVotes, successCount.Load())
	}

	// No lost updates
	var likes int
	if err := conn.QueryRow("SELECT likes FROM scripts WHERE id = $1", id).Scan(&likes); err != nil {
		t.Fatalf("Failed to query likes: %v", err)
	}
	if likes != numVotes {
		t.Errorf("Expected %d likes, got %d (lost updates)", numVotes, likes)
	}
}

// TestConcurrentMixedVotes verifies likes and dislikes stay independent
// under concurrent load.
func TestConcurrentMixedVotes(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	h, _ := newTestHandler(t, conn)

	id := testutil.CreateTestScript(t, conn, "contested", time.Now())

	numEach := 10
	var wg sync.WaitGroup

	for i := 0; i < numEach; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest("POST", "/scripts?action=like&id="+strconv.Itoa(id), nil)
			h.Serve(httptest.NewRecorder(), req)
		}()
		go func() {
			defer wg.Done()
			req := httptest.NewRequest("POST", "/scripts?action=dislike&id="+strconv.Itoa(id), nil)
			h.Serve(httptest.NewRecorder(), req)
		}()
	}

	wg.Wait()

	var likes, dislikes int
	if err := conn.QueryRow("SELECT likes, dislikes FROM scripts WHERE id = $1", id).Scan(&likes, &dislikes); err != nil {
		t.Fatalf("Failed to query counters: %v", err)
	}
	if likes != numEach {
		t.Errorf("Expected %d likes, got %d", numEach, likes)
	}
	if dislikes != numEach {
		t.Errorf("Expected %d dislikes, got %d", numEach, dislikes)
	}
}

// TestConcurrentSubmissions verifies that parallel submissions all create
// distinct rows.
func TestConcurrentSubmissions(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	h, _ := newTestHandler(t, conn)

	numSubmitters := 8
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numSubmitters; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			fields := validFields()
			fields["title"] = "Parallel Script " + string(rune('A'+idx))
			req := testutil.MakeMultipartRequest(t, "/scripts", fields, "", nil)
			w := httptest.NewRecorder()

			h.Serve(w, req)

			if w.Code == http.StatusCreated {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numSubmitters {
		t.Errorf("Expected %d successful submissions, got %d", numSubmitters, successCount.Load())
	}

	var count int
	if err := conn.QueryRow("SELECT COUNT(*) FROM scripts").Scan(&count); err != nil {
		t.Fatalf("Failed to count scripts: %v", err)
	}
	if count != numSubmitters {
		t.Errorf("Expected %d rows, got %d", numSubmitters, count)
	}

	// Ids are unique
	var distinct int
	if err := conn.QueryRow("SELECT COUNT(DISTINCT id) FROM scripts").Scan(&distinct); err != nil {
		t.Fatalf("Failed to count distinct ids: %v", err)
	}
	if distinct != numSubmitters {
		t.Errorf("Expected %d distinct ids, got %d", numSubmitters, distinct)
	}
}
