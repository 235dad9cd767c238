// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// CreateSchema creates all tables needed for the snapshot archive.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	// Executed one statement at a time; not every driver accepts a batch
	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// Timestamps are always written explicitly; sqlite and postgres disagree on defaults
const schema = `
-- Election snapshots
CREATE TABLE IF NOT EXISTS election_snapshot (
    id TEXT PRIMARY KEY,
    scenario TEXT NOT NULL,
    computed_at TIMESTAMP NOT NULL,
    winner_id TEXT,
    total_votes INTEGER NOT NULL CHECK (total_votes >= 0),
    inputs_hash TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_election_snapshot_scenario ON election_snapshot(scenario);

-- Ranked results per snapshot
CREATE TABLE IF NOT EXISTS snapshot_result (
    snapshot_id TEXT NOT NULL REFERENCES election_snapshot(id) ON DELETE CASCADE,
    place INTEGER NOT NULL,
    candidate_id TEXT NOT NULL,
    name TEXT NOT NULL,
    party TEXT NOT NULL,
    votes INTEGER NOT NULL CHECK (votes >= 0),
    PRIMARY KEY (snapshot_id, place)
);

CREATE INDEX IF NOT EXISTS idx_snapshot_result_candidate ON snapshot_result(candidate_id);
`
