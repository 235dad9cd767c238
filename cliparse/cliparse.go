// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

var DefaultRequiredFields = []string{"id", "name", "age"}

type Config struct {
	ScenarioPath   string
	DatabaseURL    string
	DatabaseType   string
	MinAge         int
	RequiredFields []string
	Validate       bool
	LogLevel       slog.Level
}

// ParseFlags reads flags, falling back to the environment.
// A .env file in the working directory is loaded first if present.
func ParseFlags(args []string) (Config, error) {
	return ParseFlagsWithEnvFile(args, ".env")
}

// ParseFlagsWithEnvFile is ParseFlags with an explicit .env path.
// Variables already set in the environment are never overwritten.
func ParseFlagsWithEnvFile(args []string, envFile string) (Config, error) {
	var cfg Config
	var required, logLevel string

	fs := flag.NewFlagSet("panchayat", flag.ContinueOnError)

	fs.StringVar(&cfg.ScenarioPath, "f", "", "Scenario file (YAML or JSON)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Snapshot database URL (optional)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Validator rules
	fs.IntVar(&cfg.MinAge, "min-age", 0, "Minimum voter age for the validator")
	fs.StringVar(&required, "require", "", "Comma separated fields the validator requires")
	fs.BoolVar(&cfg.Validate, "validate", false, "Run the validator before registering voters")

	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	// Fall back to environment variables
	if cfg.ScenarioPath == "" {
		cfg.ScenarioPath = os.Getenv("SCENARIO_FILE")
	}
	if cfg.ScenarioPath == "" {
		return Config{}, errors.New("scenario file required (use -f or SCENARIO_FILE env)")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.MinAge == 0 {
		if ageStr := os.Getenv("MIN_AGE"); ageStr != "" {
			age, err := strconv.Atoi(ageStr)
			if err != nil {
				return Config{}, errors.New("invalid MIN_AGE env variable")
			}
			cfg.MinAge = age
		} else {
			cfg.MinAge = 18 // default
		}
	}
	if cfg.MinAge < 0 {
		return Config{}, errors.New("minimum age cannot be negative")
	}

	if required == "" {
		required = os.Getenv("REQUIRED_FIELDS")
	}
	if required == "" {
		cfg.RequiredFields = append([]string(nil), DefaultRequiredFields...)
	} else {
		cfg.RequiredFields = splitFields(required)
	}

	if !cfg.Validate {
		if v := os.Getenv("VALIDATE"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, errors.New("invalid VALIDATE env variable")
			}
			cfg.Validate = b
		}
	}

	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
	}
	if logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
			return Config{}, fmt.Errorf("invalid log level %q", logLevel)
		}
	}

	return cfg, nil
}

func splitFields(s string) []string {
	var fields []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}
