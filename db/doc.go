// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db archives final election results.

The archive is write-once: snapshots record what an election produced and
are never used to rebuild an election.

# Connecting

Open picks the driver from the configuration:

	conn, err := db.Open(cfg) // sqlite (modernc.org/sqlite) or postgres (lib/pq)

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - election_snapshot: one row per archived run (winner, totals, inputs hash)
  - snapshot_result: ranked results per snapshot

# Relationships

	election_snapshot 1──* snapshot_result

The foreign key uses ON DELETE CASCADE.

# Snapshots

	snap := db.NewSnapshot(name, results, winner, hasWinner, time.Now())
	err := db.SaveSnapshot(ctx, conn, snap)
	got, err := db.GetSnapshot(ctx, conn, snap.ID)

Snapshot ids are random UUIDs. The inputs hash is a SHA-256 over the
ordered results, so any change in ranking or counts changes the hash.
*/
package db
