// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election implements an in-memory election: voter registration,
one vote per voter, ranked results and winner selection.

# Engine

An Engine is created from a fixed candidate list and owns its state:

	e := election.New([]models.Candidate{
		{ID: "C1", Name: "Sarpanch Ram", Party: "Janata"},
		{ID: "C2", Name: "Pradhan Sita", Party: "Lok"},
	})

	e.RegisterVoter(&models.Voter{ID: "V1", Name: "Mohan", Age: 25}) // true
	receipt, err := e.Cast("V1", "C1")

Registration requires an age of at least 18 and an unused voter id.
Registered and voted sets only grow.

# Casting Votes

Cast checks, in order, that the voter is registered, the candidate exists,
and the voter has not voted yet. Each failure is a sentinel error whose
message is the rejection reason:

	ErrVoterNotRegistered  "Voter not registered"
	ErrCandidateNotFound   "Candidate does not exist"
	ErrAlreadyVoted        "Voter already voted"

CastVote offers the same operation with two continuations, exactly one of
which runs before it returns:

	msg, _ := election.CastVote(e, "V1", "C1",
		func(r models.Receipt) string { return "voted!" },
		func(reason string) string { return "error: " + reason },
	)

# Results

Results orders candidates by votes, highest first, unless a comparator is
given. Sorting is stable: equal candidates keep their original order, so
Winner picks the earliest listed candidate on a tie. Winner reports false
when no votes have been cast.

# Utilities

These do not touch any Engine:

  - NewVoteValidator: builds a reusable voter record check from Rules
  - CountVotesInRegions: sums a nested region tree
  - ParseRegion: builds a region tree from decoded YAML/JSON
  - TallyPure: returns an incremented copy of a tally

# Concurrency

An Engine is meant for a single goroutine. Use one Engine per election.
*/
package election
