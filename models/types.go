// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Rejection reasons reported when a vote cannot be recorded
const (
	ReasonVoterNotRegistered = "Voter not registered"
	ReasonCandidateNotFound  = "Candidate does not exist"
	ReasonAlreadyVoted       = "Voter already voted"
)

// Validator reasons
const (
	ReasonInvalidVoter = "Invalid voter object"
	ReasonMissingField = "Missing field: "
	ReasonUnderage     = "Underage voter"
)

// Domain types

type Candidate struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Party string `json:"party" yaml:"party"`
}

type Voter struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Age  int    `json:"age" yaml:"age"`
}

// VoterRecord is a loosely typed voter, as decoded from a scenario file.
// Fields may be missing or carry the wrong type.
type VoterRecord map[string]any

// Record converts a typed voter into a record
func (v Voter) Record() VoterRecord {
	return VoterRecord{
		"id":   v.ID,
		"name": v.Name,
		"age":  v.Age,
	}
}

// Receipt is handed to the success continuation of a recorded vote
type Receipt struct {
	VoterID     string `json:"voter_id"`
	CandidateID string `json:"candidate_id"`
}

// Result is one ranked candidate with its vote count
type Result struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Party string `json:"party"`
	Votes int    `json:"votes"`
}

// RegionNode holds the votes local to a region; children are counted separately
type RegionNode struct {
	Name       string        `json:"name"`
	Votes      int           `json:"votes"`
	SubRegions []*RegionNode `json:"subRegions"`
}

// Scenario file types

type VoteRequest struct {
	VoterID     string `json:"voter" yaml:"voter"`
	CandidateID string `json:"candidate" yaml:"candidate"`
}

type Scenario struct {
	Name       string        `json:"name" yaml:"name"`
	Candidates []Candidate   `json:"candidates" yaml:"candidates"`
	Voters     []VoterRecord `json:"voters" yaml:"voters"`
	Votes      []VoteRequest `json:"votes" yaml:"votes"`
	Regions    any           `json:"regions" yaml:"regions"` // Left raw; shape is checked when counted
}

// Archive types

type Snapshot struct {
	ID         string    `json:"id"`
	Scenario   string    `json:"scenario"`
	ComputedAt time.Time `json:"computed_at"`
	Results    []Result  `json:"results"`
	WinnerID   *string   `json:"winner_id,omitempty"`
	TotalVotes int       `json:"total_votes"`
	InputsHash string    `json:"inputs_hash"` // Hash of the ordered results for verification
}
