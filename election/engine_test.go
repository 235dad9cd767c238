// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"cmp"
	"errors"
	"math"
	"testing"

	"github.com/danielhkuo/panchayat/models"
)

func testCandidates() []models.Candidate {
	return []models.Candidate{
		{ID: "C1", Name: "Sarpanch Ram", Party: "Janata"},
		{ID: "C2", Name: "Pradhan Sita", Party: "Lok"},
		{ID: "C3", Name: "Mukhiya Gopal", Party: "Kisan"},
	}
}

// setupElection creates an election with the test candidates and registers voters V1..Vn
func setupElection(t *testing.T, voters int) *Engine {
	t.Helper()

	e := New(testCandidates())
	for i := 1; i <= voters; i++ {
		v := &models.Voter{ID: "V" + string(rune('0'+i)), Name: "Voter", Age: 30}
		if !e.RegisterVoter(v) {
			t.Fatalf("Failed to register voter %s", v.ID)
		}
	}
	return e
}

func TestNew(t *testing.T) {
	t.Run("nil candidates", func(t *testing.T) {
		e := New(nil)
		if len(e.Results(nil)) != 0 {
			t.Error("Expected no results")
		}
		if len(e.Tally()) != 0 {
			t.Error("Expected empty tally")
		}
		if _, ok := e.Winner(); ok {
			t.Error("Expected no winner")
		}
	})

	t.Run("tally seeded at zero", func(t *testing.T) {
		e := New(testCandidates())
		tally := e.Tally()
		if len(tally) != 3 {
			t.Fatalf("Expected 3 tally entries, got %d", len(tally))
		}
		for id, n := range tally {
			if n != 0 {
				t.Errorf("Expected 0 votes for %s, got %d", id, n)
			}
		}
	})

	t.Run("caller slice is copied", func(t *testing.T) {
		candidates := testCandidates()
		e := New(candidates)
		candidates[0].ID = "changed"

		if e.Candidates()[0].ID != "C1" {
			t.Error("Engine should not share the caller's candidate slice")
		}
	})
}

func TestRegisterVoter(t *testing.T) {
	tests := []struct {
		name     string
		voter    *models.Voter
		expected bool
	}{
		{
			name:     "valid adult",
			voter:    &models.Voter{ID: "V1", Name: "Mohan", Age: 25},
			expected: true,
		},
		{
			name:     "exactly 18",
			voter:    &models.Voter{ID: "V2", Name: "Geeta", Age: 18},
			expected: true,
		},
		{
			name:     "underage",
			voter:    &models.Voter{ID: "V3", Name: "Chotu", Age: 17},
			expected: false,
		},
		{
			name:     "nil voter",
			voter:    nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(testCandidates())
			if got := e.RegisterVoter(tt.voter); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}

			want := 0
			if tt.expected {
				want = 1
			}
			if e.RegisteredCount() != want {
				t.Errorf("Expected %d registered, got %d", want, e.RegisteredCount())
			}
			if tt.voter != nil && e.IsRegistered(tt.voter.ID) != tt.expected {
				t.Errorf("IsRegistered(%q) should be %v", tt.voter.ID, tt.expected)
			}
		})
	}
}

func TestRegisterVoter_Duplicate(t *testing.T) {
	e := New(testCandidates())
	v := &models.Voter{ID: "V1", Name: "Mohan", Age: 25}

	if !e.RegisterVoter(v) {
		t.Fatal("First registration should succeed")
	}
	if e.RegisterVoter(&models.Voter{ID: "V1", Name: "Someone Else", Age: 40}) {
		t.Error("Second registration with the same id should fail")
	}
	if e.RegisteredCount() != 1 {
		t.Errorf("Expected 1 registered voter, got %d", e.RegisteredCount())
	}
}

func TestRegisterRecord(t *testing.T) {
	tests := []struct {
		name     string
		record   models.VoterRecord
		expected bool
	}{
		{"valid record", models.VoterRecord{"id": "V1", "name": "Mohan", "age": 25}, true},
		{"float age from JSON", models.VoterRecord{"id": "V1", "name": "Mohan", "age": 30.0}, true},
		{"fractional age below 18", models.VoterRecord{"id": "V1", "name": "Mohan", "age": 17.9}, false},
		{"numeric id", models.VoterRecord{"id": 7, "name": "Mohan", "age": 25}, false},
		{"missing name", models.VoterRecord{"id": "V1", "age": 25}, false},
		{"string age", models.VoterRecord{"id": "V1", "name": "Mohan", "age": "25"}, false},
		{"nil record", nil, false},
		{"age beyond int range", models.VoterRecord{"id": "V1", "name": "Mohan", "age": 1e20}, true},
		{"infinite age", models.VoterRecord{"id": "V1", "name": "Mohan", "age": math.Inf(1)}, true},
		{"negative infinite age", models.VoterRecord{"id": "V1", "name": "Mohan", "age": math.Inf(-1)}, false},
		{"NaN age", models.VoterRecord{"id": "V1", "name": "Mohan", "age": math.NaN()}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(testCandidates())
			if got := e.RegisterRecord(tt.record); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCast(t *testing.T) {
	e := setupElection(t, 2)

	receipt, err := e.Cast("V1", "C2")
	if err != nil {
		t.Fatalf("Cast failed: %v", err)
	}
	if receipt.VoterID != "V1" || receipt.CandidateID != "C2" {
		t.Errorf("Unexpected receipt: %+v", receipt)
	}
	if !e.HasVoted("V1") {
		t.Error("V1 should be marked as voted")
	}

	tests := []struct {
		name        string
		voterID     string
		candidateID string
		expectedErr error
	}{
		{"unregistered voter", "V9", "C1", ErrVoterNotRegistered},
		{"unregistered voter and unknown candidate", "V9", "C9", ErrVoterNotRegistered},
		{"unknown candidate", "V2", "C9", ErrCandidateNotFound},
		{"already voted and unknown candidate", "V1", "C9", ErrCandidateNotFound},
		{"already voted", "V1", "C1", ErrAlreadyVoted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := e.Tally()

			_, err := e.Cast(tt.voterID, tt.candidateID)
			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("Expected %v, got %v", tt.expectedErr, err)
			}

			after := e.Tally()
			for id, n := range before {
				if after[id] != n {
					t.Errorf("Tally for %s changed from %d to %d", id, n, after[id])
				}
			}
		})
	}

	if e.VotedCount() != 1 {
		t.Errorf("Expected 1 voter to have voted, got %d", e.VotedCount())
	}
}

func TestCastVote_Continuations(t *testing.T) {
	e := setupElection(t, 1)

	var successCalls, errorCalls int
	onSuccess := func(r models.Receipt) string {
		successCalls++
		return "voted for " + r.CandidateID
	}
	onError := func(reason string) string {
		errorCalls++
		return "error: " + reason
	}

	got, ok := CastVote(e, "V1", "C1", onSuccess, onError)
	if !ok || got != "voted for C1" {
		t.Errorf("Expected (\"voted for C1\", true), got (%q, %v)", got, ok)
	}

	got, ok = CastVote(e, "V1", "C1", onSuccess, onError)
	if !ok || got != "error: Voter already voted" {
		t.Errorf("Expected already voted error, got (%q, %v)", got, ok)
	}

	got, _ = CastVote(e, "nobody", "C1", onSuccess, onError)
	if got != "error: Voter not registered" {
		t.Errorf("Expected not registered error, got %q", got)
	}

	got, _ = CastVote(e, "V1", "C404", onSuccess, onError)
	if got != "error: Candidate does not exist" {
		t.Errorf("Expected candidate error, got %q", got)
	}

	if successCalls != 1 || errorCalls != 3 {
		t.Errorf("Expected 1 success and 3 error calls, got %d and %d", successCalls, errorCalls)
	}
}

func TestCastVote_NilContinuation(t *testing.T) {
	e := setupElection(t, 1)
	called := false
	onSuccess := func(models.Receipt) int { called = true; return 1 }
	onError := func(string) int { called = true; return -1 }

	for _, tc := range []struct {
		name      string
		onSuccess func(models.Receipt) int
		onError   func(string) int
	}{
		{"nil success", nil, onError},
		{"nil error", onSuccess, nil},
		{"both nil", nil, nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := CastVote(e, "V1", "C1", tc.onSuccess, tc.onError)
			if ok || got != 0 {
				t.Errorf("Expected (0, false), got (%d, %v)", got, ok)
			}
		})
	}

	if called {
		t.Error("No continuation should run when one is nil")
	}
	if e.HasVoted("V1") {
		t.Error("No vote should be recorded when a continuation is nil")
	}
}

func TestResults(t *testing.T) {
	e := setupElection(t, 4)
	for _, v := range []struct{ voter, candidate string }{
		{"V1", "C2"}, {"V2", "C2"}, {"V3", "C3"},
	} {
		if _, err := e.Cast(v.voter, v.candidate); err != nil {
			t.Fatalf("Cast failed: %v", err)
		}
	}

	results := e.Results(nil)
	wantOrder := []string{"C2", "C3", "C1"}
	wantVotes := []int{2, 1, 0}
	for i, r := range results {
		if r.ID != wantOrder[i] || r.Votes != wantVotes[i] {
			t.Errorf("Position %d: expected %s with %d votes, got %s with %d", i, wantOrder[i], wantVotes[i], r.ID, r.Votes)
		}
	}
	if results[0].Name != "Pradhan Sita" || results[0].Party != "Lok" {
		t.Errorf("Expected candidate fields to be copied, got %+v", results[0])
	}

	t.Run("custom comparator", func(t *testing.T) {
		byID := e.Results(func(a, b models.Result) int { return cmp.Compare(a.ID, b.ID) })
		for i, id := range []string{"C1", "C2", "C3"} {
			if byID[i].ID != id {
				t.Errorf("Position %d: expected %s, got %s", i, id, byID[i].ID)
			}
		}
	})

	t.Run("returned slice is independent", func(t *testing.T) {
		first := e.Results(nil)
		first[0].Votes = 100
		if e.Results(nil)[0].Votes != 2 {
			t.Error("Mutating results must not affect the engine")
		}
	})
}

func TestWinner(t *testing.T) {
	t.Run("no votes", func(t *testing.T) {
		e := setupElection(t, 2)
		if _, ok := e.Winner(); ok {
			t.Error("Expected no winner before any vote")
		}
	})

	t.Run("clear winner", func(t *testing.T) {
		e := setupElection(t, 3)
		e.Cast("V1", "C3")
		e.Cast("V2", "C3")
		e.Cast("V3", "C1")

		w, ok := e.Winner()
		if !ok || w.ID != "C3" || w.Votes != 2 {
			t.Errorf("Expected C3 with 2 votes, got %+v (ok=%v)", w, ok)
		}
	})

	t.Run("tie goes to first listed", func(t *testing.T) {
		e := setupElection(t, 2)
		e.Cast("V1", "C2")
		e.Cast("V2", "C1")

		w, ok := e.Winner()
		if !ok || w.ID != "C1" {
			t.Errorf("Expected C1 on a tie, got %+v (ok=%v)", w, ok)
		}
	})
}

func TestDuplicateCandidateIDs(t *testing.T) {
	e := New([]models.Candidate{
		{ID: "C1", Name: "First"},
		{ID: "C1", Name: "Second"},
	})
	e.RegisterVoter(&models.Voter{ID: "V1", Name: "Mohan", Age: 30})
	e.Cast("V1", "C1")

	// Both records read the same tally entry
	for _, r := range e.Results(nil) {
		if r.Votes != 1 {
			t.Errorf("Expected 1 vote for %s, got %d", r.Name, r.Votes)
		}
	}
}
