// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scenario

import (
	"fmt"
	"log/slog"
	"maps"

	"github.com/danielhkuo/panchayat/election"
	"github.com/danielhkuo/panchayat/models"
)

// Entry kinds in an outcome log
const (
	KindRegistered = "registered"
	KindRejected   = "rejected"
	KindVoted      = "voted"
	KindVoteFailed = "vote_failed"
)

type Options struct {
	Validate bool
	Rules    election.Rules
	Logger   *slog.Logger
}

// Entry is one line of the run log
type Entry struct {
	Kind        string
	VoterID     string
	CandidateID string
	Reason      string
}

type Outcome struct {
	Scenario   string
	Log        []Entry
	Results    []models.Result
	Winner     models.Result
	HasWinner  bool
	Registered int
	Voted      int
	// Tally rebuilt from receipts with TallyPure; must agree with Results
	ShadowTally     election.Tally
	TallyConsistent bool
	HasRegions      bool
	RegionVotes     int
}

// Rejected returns the entries for failed registrations and votes
func (o Outcome) Rejected() []Entry {
	var out []Entry
	for _, e := range o.Log {
		if e.Kind == KindRejected || e.Kind == KindVoteFailed {
			out = append(out, e)
		}
	}
	return out
}

// Run plays a scenario against a fresh election
func Run(sc models.Scenario, opts Options) Outcome {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	engine := election.New(sc.Candidates, election.WithLogger(logger))
	out := Outcome{Scenario: sc.Name}

	var validate election.Validator
	if opts.Validate {
		validate = election.NewVoteValidator(opts.Rules)
	}

	for i, record := range sc.Voters {
		id := voterLabel(record, i)

		if validate != nil {
			if res := validate(record); !res.Valid {
				out.Log = append(out.Log, Entry{Kind: KindRejected, VoterID: id, Reason: res.Reason})
				continue
			}
		}

		if !engine.RegisterRecord(record) {
			out.Log = append(out.Log, Entry{Kind: KindRejected, VoterID: id, Reason: "registration refused"})
			continue
		}
		out.Log = append(out.Log, Entry{Kind: KindRegistered, VoterID: id})
	}

	shadow := election.Tally{}
	for _, c := range sc.Candidates {
		if c.ID != "" {
			shadow[c.ID] = 0
		}
	}

	for _, v := range sc.Votes {
		entry, _ := election.CastVote(engine, v.VoterID, v.CandidateID,
			func(r models.Receipt) Entry {
				shadow = election.TallyPure(shadow, r.CandidateID)
				return Entry{Kind: KindVoted, VoterID: r.VoterID, CandidateID: r.CandidateID}
			},
			func(reason string) Entry {
				return Entry{Kind: KindVoteFailed, VoterID: v.VoterID, CandidateID: v.CandidateID, Reason: reason}
			},
		)
		out.Log = append(out.Log, entry)
	}

	out.Results = engine.Results(nil)
	out.Winner, out.HasWinner = engine.Winner()
	out.Registered = engine.RegisteredCount()
	out.Voted = engine.VotedCount()
	out.ShadowTally = shadow
	out.TallyConsistent = maps.Equal(shadow, engine.Tally())

	if sc.Regions != nil {
		out.HasRegions = true
		out.RegionVotes = election.CountVotesInRegions(election.ParseRegion(sc.Regions))
	}

	if !out.TallyConsistent {
		logger.Warn("shadow tally disagrees with engine", "scenario", sc.Name)
	}
	logger.Info("scenario complete",
		"scenario", sc.Name,
		"registered", out.Registered,
		"voted", out.Voted,
		"rejections", len(out.Rejected()),
	)

	return out
}

// voterLabel names a record in the log even when its id is unusable
func voterLabel(r models.VoterRecord, index int) string {
	if id, ok := r["id"].(string); ok {
		return id
	}
	return fmt.Sprintf("#%d", index+1)
}
