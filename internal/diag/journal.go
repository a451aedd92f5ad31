// Copyright (c) 2025 Doğan Keleş
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diag keeps a local journal of gateway requests.
//
// Every resolved backend call gets one row: which flow it served, how it
// ended, and how long it took. The journal is internal observability only;
// nothing user-visible depends on it, and a journal failure never surfaces
// past a log line.
package diag

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// =============================================================================
// ENTRY TYPE
// =============================================================================

// Entry is one recorded gateway call.
type Entry struct {
	RequestID  string
	Flow       string // "chat" or "download"
	Outcome    string // "ok" or "error"
	Cause      string // failure category, empty on success
	HTTPStatus int    // 0 when the request never reached the server
	Duration   time.Duration
	CreatedAt  time.Time
}

// =============================================================================
// JOURNAL
// =============================================================================

// Journal is a SQLite-backed request log.
type Journal struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS requests (
	request_id  TEXT PRIMARY KEY,
	flow        TEXT NOT NULL,
	outcome     TEXT NOT NULL,
	cause       TEXT NOT NULL DEFAULT '',
	http_status INTEGER NOT NULL DEFAULT 0,
	duration_ms INTEGER NOT NULL DEFAULT 0,
	created_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_requests_created ON requests(created_at);
`

// Open opens (creating if necessary) the journal at path. Pass ":memory:"
// for an ephemeral journal.
func Open(path string) (*Journal, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Journal{db: db}, nil
}

// Record inserts one entry.
func (j *Journal) Record(e Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	_, err := j.db.Exec(
		`INSERT INTO requests (request_id, flow, outcome, cause, http_status, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.RequestID, e.Flow, e.Outcome, e.Cause, e.HTTPStatus, e.Duration.Milliseconds(), e.CreatedAt,
	)
	return err
}

// Recent returns up to limit entries, newest first.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	rows, err := j.db.Query(
		`SELECT request_id, flow, outcome, cause, http_status, duration_ms, created_at
		 FROM requests ORDER BY created_at DESC, request_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var durationMS int64
		if err := rows.Scan(&e.RequestID, &e.Flow, &e.Outcome, &e.Cause, &e.HTTPStatus, &durationMS, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Duration = time.Duration(durationMS) * time.Millisecond
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}
