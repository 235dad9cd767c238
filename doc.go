// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Panchayat election runner.

Panchayat runs a village election described in a scenario file: it
registers voters, casts votes, ranks candidates and names a winner.

# Running

The runner requires a scenario file, given as a flag or environment variable:

	SCENARIO_FILE=village.yaml go run .

Or with flags:

	go run . -f village.yaml -validate -min-age 21

# Configuration

Required settings:

  - SCENARIO_FILE (-f): YAML or JSON scenario

Optional settings:

  - DATABASE_URL (-d): archive results to sqlite or postgres
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - VALIDATE (-validate), MIN_AGE (-min-age), REQUIRED_FIELDS (-require):
    check voter records before registration
  - LOG_LEVEL (-log-level): debug, info, warn, error

A .env file in the working directory is read first.

# Architecture

  - election: the election engine and standalone vote utilities
  - scenario: scenario loading and playback
  - report: text rendering of an outcome
  - db: result snapshot archive
  - models: shared types
  - cliparse: configuration parsing
  - testutil: test fixtures

See package documentation for each component.
*/
package main
