// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scenario loads election scenario files and plays them against an
election.Engine.

# File Format

YAML (.yaml, .yml) or JSON (.json):

	name: rampur-2025
	candidates:
	  - {id: C1, name: Sarpanch Ram, party: Janata}
	voters:
	  - {id: V1, name: Mohan, age: 25}
	votes:
	  - {voter: V1, candidate: C1}
	regions:
	  name: Rampur
	  votes: 5
	  subRegions: [...]

Voters are kept as loose records so that malformed entries reach the
engine (and the optional validator) as they were written.

# Running

	sc, err := scenario.Load("village.yaml")
	out := scenario.Run(sc, scenario.Options{Validate: true, Rules: rules})

Run registers every voter, casts every vote through election.CastVote,
and records each step in Outcome.Log. Every successful vote is also folded
into a separate tally with election.TallyPure; Outcome.TallyConsistent
reports whether it matches the engine.
*/
package scenario
