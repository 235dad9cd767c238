// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/panchayat/models"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

// NewSnapshot builds an archive record from ranked results
func NewSnapshot(scenario string, results []models.Result, winner models.Result, hasWinner bool, now time.Time) models.Snapshot {
	s := models.Snapshot{
		ID:         uuid.NewString(),
		Scenario:   scenario,
		ComputedAt: now.UTC().Truncate(time.Microsecond),
		Results:    append([]models.Result(nil), results...),
		InputsHash: computeInputsHash(results),
	}
	for _, r := range results {
		s.TotalVotes += r.Votes
	}
	if hasWinner {
		id := winner.ID
		s.WinnerID = &id
	}
	return s
}

// SaveSnapshot writes a snapshot and its results in one transaction
func SaveSnapshot(ctx context.Context, db *sql.DB, s models.Snapshot) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO election_snapshot (id, scenario, computed_at, winner_id, total_votes, inputs_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, s.ID, s.Scenario, s.ComputedAt, s.WinnerID, s.TotalVotes, s.InputsHash)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}

	for i, r := range s.Results {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO snapshot_result (snapshot_id, place, candidate_id, name, party, votes)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, s.ID, i+1, r.ID, r.Name, r.Party, r.Votes)
		if err != nil {
			return fmt.Errorf("failed to insert result %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

// GetSnapshot loads a snapshot with its results in ranked order
func GetSnapshot(ctx context.Context, db *sql.DB, id string) (models.Snapshot, error) {
	var s models.Snapshot
	var winnerID sql.NullString
	err := db.QueryRowContext(ctx, `
		SELECT id, scenario, computed_at, winner_id, total_votes, inputs_hash
		FROM election_snapshot
		WHERE id = $1
	`, id).Scan(&s.ID, &s.Scenario, &s.ComputedAt, &winnerID, &s.TotalVotes, &s.InputsHash)

	if err == sql.ErrNoRows {
		return models.Snapshot{}, ErrSnapshotNotFound
	}
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to query snapshot: %w", err)
	}
	if winnerID.Valid {
		s.WinnerID = &winnerID.String
	}

	rows, err := db.QueryContext(ctx, `
		SELECT candidate_id, name, party, votes
		FROM snapshot_result
		WHERE snapshot_id = $1
		ORDER BY place
	`, id)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	s.Results = []models.Result{}
	for rows.Next() {
		var r models.Result
		if err := rows.Scan(&r.ID, &r.Name, &r.Party, &r.Votes); err != nil {
			return models.Snapshot{}, fmt.Errorf("failed to scan result: %w", err)
		}
		s.Results = append(s.Results, r)
	}

	return s, rows.Err()
}

// computeInputsHash hashes the ordered results for later verification
func computeInputsHash(results []models.Result) string {
	h := sha256.New()
	for i, r := range results {
		fmt.Fprintf(h, "%d|%s|%d\n", i+1, r.ID, r.Votes)
	}
	return hex.EncodeToString(h.Sum(nil))
}
