// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/panchayat/cliparse"
	"github.com/danielhkuo/panchayat/db"
	"github.com/danielhkuo/panchayat/election"
	"github.com/danielhkuo/panchayat/models"
)

// GetTestConfig returns a standard test configuration backed by a sqlite file in dir
func GetTestConfig(dir string) cliparse.Config {
	return cliparse.Config{
		ScenarioPath:   "village.yaml",
		DatabaseURL:    filepath.Join(dir, "panchayat_test.db"),
		DatabaseType:   cliparse.DatabaseSQLite,
		MinAge:         election.DefaultMinAge,
		RequiredFields: append([]string(nil), cliparse.DefaultRequiredFields...),
	}
}

// SetupTestDB creates a fresh sqlite archive with the full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(GetTestConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SampleCandidates returns the candidates used across tests
func SampleCandidates() []models.Candidate {
	return []models.Candidate{
		{ID: "C1", Name: "Sarpanch Ram", Party: "Janata"},
		{ID: "C2", Name: "Pradhan Sita", Party: "Lok"},
		{ID: "C3", Name: "Mukhiya Gopal", Party: "Kisan"},
	}
}

// CreateTestElection creates an election over SampleCandidates and casts
// one vote per entry in votes, registering a fresh adult voter for each.
func CreateTestElection(t *testing.T, votes ...string) *election.Engine {
	t.Helper()

	e := election.New(SampleCandidates())
	for i, candidateID := range votes {
		v := &models.Voter{ID: "voter-" + string(rune('a'+i)), Name: "Test Voter", Age: 30}
		if !e.RegisterVoter(v) {
			t.Fatalf("Failed to register test voter %s", v.ID)
		}
		if _, err := e.Cast(v.ID, candidateID); err != nil {
			t.Fatalf("Failed to cast test vote for %s: %v", candidateID, err)
		}
	}
	return e
}
