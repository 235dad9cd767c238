// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - ScenarioPath: Scenario file to run (required)
  - DatabaseURL: Snapshot archive connection string (optional)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - MinAge: Validator minimum age (default: 18)
  - RequiredFields: Validator required fields (default: id,name,age)
  - Validate: Check voter records before registering (default: false)
  - LogLevel: slog level (default: info)

# CLI Flags

	-f          Scenario file
	-d          Database URL
	-t          Database type
	-min-age    Minimum voter age
	-require    Comma separated required fields
	-validate   Enable the validator
	-log-level  debug, info, warn or error

# Environment Variables

Flags fall back to environment variables:

	SCENARIO_FILE   → -f
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	MIN_AGE         → -min-age
	REQUIRED_FIELDS → -require
	VALIDATE        → -validate
	LOG_LEVEL       → -log-level

CLI flags take precedence over environment variables. A .env file in the
working directory is loaded with godotenv before the fallback; variables
already present in the environment are kept.

# Validation

ParseFlags returns an error if:

  - no scenario file is given
  - the database type is neither sqlite nor postgres
  - MIN_AGE, VALIDATE or the log level cannot be parsed
*/
package cliparse
