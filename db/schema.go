// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the journal tables.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// One statement per entry; the sqlite and postgres drivers disagree on
// multi-statement Exec. vote_event has no foreign key: a vote can be
// journaled before the create event of its poll lands.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS poll (
    id TEXT PRIMARY KEY,
    question TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
)`,

	`CREATE TABLE IF NOT EXISTS poll_option (
    poll_id TEXT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    option_index INTEGER NOT NULL,
    text TEXT NOT NULL,
    PRIMARY KEY (poll_id, option_index)
)`,

	`CREATE TABLE IF NOT EXISTS vote_event (
    id TEXT PRIMARY KEY,
    poll_id TEXT NOT NULL,
    option_index INTEGER NOT NULL,
    total_votes INTEGER NOT NULL,
    recorded_at TIMESTAMP NOT NULL
)`,

	`CREATE INDEX IF NOT EXISTS idx_vote_event_poll_id ON vote_event(poll_id)`,
}
