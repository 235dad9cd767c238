// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the data types shared by the election engine,
the scenario runner, and the snapshot archive.

# Domain Types

  - Candidate: id, name, party (fixed when an election is created)
  - Voter: id, name, age
  - VoterRecord: loosely typed voter (map) as read from a scenario file
  - Receipt: voter_id, candidate_id of a recorded vote
  - Result: candidate with its vote count, as returned by a ranking
  - RegionNode: named vote bucket with nested sub-regions

# Scenario Types

Types for scenario files (YAML or JSON):

  - Scenario: name, candidates, voters, votes, regions
  - VoteRequest: voter, candidate

# Archive Types

  - Snapshot: immutable record of final results

# Constants

Vote rejection reasons:

	ReasonVoterNotRegistered = "Voter not registered"
	ReasonCandidateNotFound  = "Candidate does not exist"
	ReasonAlreadyVoted       = "Voter already voted"

Validator reasons:

	ReasonInvalidVoter = "Invalid voter object"
	ReasonMissingField = "Missing field: "
	ReasonUnderage     = "Underage voter"
*/
package models
