// Copyright (c) 2026 the ScriptHub authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/example/scripthub/db"
	"github.com/example/scripthub/models"
)

var (
	// ErrNotFound signals that no row matches the requested id. Callers must
	// be able to tell this apart from a storage failure.
	ErrNotFound = errors.New("script not found")

	// ErrMissingField signals a create call with a blank required field.
	ErrMissingField = errors.New("missing required field")

	// ErrUnknownCounter signals an increment on anything other than
	// likes/dislikes.
	ErrUnknownCounter = errors.New("unknown counter")
)

// Store exposes the script record lifecycle against a relational backend.
type Store struct {
	db      *sql.DB
	dialect db.Dialect
}

func New(conn *sql.DB, dialect db.Dialect) *Store {
	return &Store{db: conn, dialect: dialect}
}

// GetByID looks up a single script by primary key. Returns ErrNotFound when
// no row matches. A missing table is treated as first-run: the schema is
// created and ErrNotFound returned, without retrying the read.
func (s *Store) GetByID(id int) (models.Script, error) {
	var sc models.Script
	err := s.db.QueryRow(`
		SELECT id, title, game_icon, game_name, thumbnail_url, code, author, discord, likes, dislikes, created_at
		FROM scripts
		WHERE id = $1
	`, id).Scan(
		&sc.ID, &sc.Title, &sc.GameIcon, &sc.GameName, &sc.ThumbnailURL,
		&sc.Code, &sc.Author, &sc.Discord, &sc.Likes, &sc.Dislikes, &sc.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return models.Script{}, ErrNotFound
	}
	if err != nil {
		if isMissingTable(err) {
			if berr := s.bootstrap(); berr != nil {
				return models.Script{}, berr
			}
			return models.Script{}, ErrNotFound
		}
		return models.Script{}, fmt.Errorf("failed to query script: %w", err)
	}
	return sc, nil
}

// ListAll returns every script, newest first. On a missing table it creates
// the schema and returns an empty list rather than failing the request.
func (s *Store) ListAll() ([]models.Script, error) {
	rows, err := s.db.Query(`
		SELECT id, title, game_icon, game_name, thumbnail_url, code, author, discord, likes, dislikes, created_at
		FROM scripts
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		if isMissingTable(err) {
			if berr := s.bootstrap(); berr != nil {
				return nil, berr
			}
			return []models.Script{}, nil
		}
		return nil, fmt.Errorf("failed to query scripts: %w", err)
	}
	defer rows.Close()

	scripts := []models.Script{}
	for rows.Next() {
		var sc models.Script
		if err := rows.Scan(
			&sc.ID, &sc.Title, &sc.GameIcon, &sc.GameName, &sc.ThumbnailURL,
			&sc.Code, &sc.Author, &sc.Discord, &sc.Likes, &sc.Dislikes, &sc.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan script: %w", err)
		}
		scripts = append(scripts, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scripts: %w", err)
	}
	return scripts, nil
}

// Create inserts a new script row and returns its assigned id. Counters
// start at 0 and created_at is set here so both engines agree on the value.
func (s *Store) Create(req models.CreateScript) (int, error) {
	if err := validate(req); err != nil {
		return 0, err
	}

	var id int
	err := s.db.QueryRow(`
		INSERT INTO scripts (title, game_icon, game_name, thumbnail_url, code, author, discord, likes, dislikes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, 0, $8)
		RETURNING id
	`, req.Title, req.GameIcon, req.GameName, req.ThumbnailURL, req.Code, req.Author, req.Discord, time.Now()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert script: %w", err)
	}
	return id, nil
}

// IncrementCounter bumps likes or dislikes by one and returns the new value.
// The increment is a single server-side statement so concurrent votes on the
// same row never lose updates.
func (s *Store) IncrementCounter(id int, which string) (int, error) {
	if which != models.CounterLikes && which != models.CounterDislikes {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCounter, which)
	}

	// which is whitelisted above; it is safe to splice into the statement.
	var value int
	query := fmt.Sprintf("UPDATE scripts SET %s = %s + 1 WHERE id = $1 RETURNING %s", which, which, which)
	err := s.db.QueryRow(query, id).Scan(&value)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to increment %s: %w", which, err)
	}
	return value, nil
}

func validate(req models.CreateScript) error {
	required := []struct {
		name, value string
	}{
		{"title", req.Title},
		{"code", req.Code},
		{"author", req.Author},
		{"game_icon", req.GameIcon},
		{"game_name", req.GameName},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	return nil
}

// bootstrap creates the schema after a read hit a missing table. main runs
// the same migration at startup, so this only fires when the store is used
// against a database that never went through main.
func (s *Store) bootstrap() error {
	slog.Info("scripts table missing, creating schema")
	ddl, err := db.Schema(s.dialect)
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(ddl); err != nil {
		return fmt.Errorf("failed to bootstrap schema: %w", err)
	}
	return nil
}

// isMissingTable reports whether err means the scripts table does not exist.
// Postgres reports undefined_table (42P01); the sqlite driver only gives us
// the message text.
func isMissingTable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "42P01"
	}
	return strings.Contains(err.Error(), "no such table")
}
