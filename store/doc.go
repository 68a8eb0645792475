// Copyright (c) 2026 the ScriptHub authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store owns the script record lifecycle.

# Operations

	s := store.New(conn, db.Postgres)
	id, err := s.Create(req)       // insert, counters start at 0
	sc, err := s.GetByID(id)       // store.ErrNotFound when absent
	all, err := s.ListAll()        // newest first
	n, err := s.IncrementCounter(id, models.CounterLikes)

Records are never updated after creation except through IncrementCounter,
and never deleted.

# Counter Atomicity

IncrementCounter runs a single UPDATE ... SET c = c + 1 ... RETURNING c
statement, so the read-modify-write happens inside the database and
concurrent votes on the same row all land.

# Lazy Bootstrap

Reads that fail because the scripts table does not exist create the schema
and report an empty result (ListAll) or ErrNotFound (GetByID) instead of
erroring. The original read is not retried. Every other storage error
propagates to the caller.
*/
package store
