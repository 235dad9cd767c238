package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielhkuo/panchayat/cliparse"
	"github.com/danielhkuo/panchayat/db"
	"github.com/danielhkuo/panchayat/election"
	"github.com/danielhkuo/panchayat/report"
	"github.com/danielhkuo/panchayat/scenario"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	// Load scenario
	sc, err := scenario.Load(cfg.ScenarioPath)
	if err != nil {
		slog.Error("scenario load failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Scenario loaded",
		"scenario", sc.Name,
		"candidates", len(sc.Candidates),
		"voters", len(sc.Voters),
		"votes", len(sc.Votes),
	)

	out := scenario.Run(sc, scenario.Options{
		Validate: cfg.Validate,
		Rules: election.Rules{
			MinAge:         election.MinAge(cfg.MinAge),
			RequiredFields: cfg.RequiredFields,
		},
		Logger: logger,
	})

	if err := report.Write(os.Stdout, out); err != nil {
		slog.Error("failed to write report", "error", err)
		os.Exit(1)
	}

	if cfg.DatabaseURL == "" {
		return
	}

	// Archive is optional; Ctrl-C abandons the write
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := archive(ctx, cfg, out); err != nil {
		slog.Error("snapshot archive failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func archive(ctx context.Context, cfg cliparse.Config, out scenario.Outcome) error {
	conn, err := db.Open(cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(conn); err != nil {
		return err
	}

	snap := db.NewSnapshot(out.Scenario, out.Results, out.Winner, out.HasWinner, time.Now())
	if err := db.SaveSnapshot(ctx, conn, snap); err != nil {
		return err
	}

	slog.Info("Snapshot saved", "id", snap.ID, "database", cfg.DatabaseType, "inputs_hash", snap.InputsHash)
	return nil
}
