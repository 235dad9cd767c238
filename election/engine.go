// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"cmp"
	"errors"
	"log/slog"
	"maps"
	"slices"

	"github.com/danielhkuo/panchayat/models"
)

// Errors returned by Cast. Their messages are the rejection reasons.
var (
	ErrVoterNotRegistered = errors.New(models.ReasonVoterNotRegistered)
	ErrCandidateNotFound  = errors.New(models.ReasonCandidateNotFound)
	ErrAlreadyVoted       = errors.New(models.ReasonAlreadyVoted)
)

// Engine holds the private state of one election.
// It is not safe for concurrent use.
type Engine struct {
	candidates []models.Candidate
	registered map[string]struct{}
	voted      map[string]struct{}
	tally      Tally
	logger     *slog.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger used for debug output
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an election for a fixed candidate list.
// A nil list gives an election with no candidates.
func New(candidates []models.Candidate, opts ...Option) *Engine {
	e := &Engine{
		candidates: slices.Clone(candidates),
		registered: make(map[string]struct{}),
		voted:      make(map[string]struct{}),
		tally:      make(Tally),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	for _, c := range e.candidates {
		if c.ID != "" {
			e.tally[c.ID] = 0
		}
	}

	return e
}

// RegisterVoter adds the voter to the registered set.
// Returns false for a nil voter, an age under 18, or an id already registered.
func (e *Engine) RegisterVoter(v *models.Voter) bool {
	if v == nil || v.Age < DefaultMinAge {
		e.logger.Debug("voter rejected", "reason", "invalid or underage")
		return false
	}
	if _, ok := e.registered[v.ID]; ok {
		e.logger.Debug("voter rejected", "reason", "already registered", "voter_id", v.ID)
		return false
	}

	e.registered[v.ID] = struct{}{}
	return true
}

// RegisterRecord registers a loosely typed voter record.
// id and name must be strings and age a number.
func (e *Engine) RegisterRecord(r models.VoterRecord) bool {
	v, ok := VoterFromRecord(r)
	if !ok {
		e.logger.Debug("voter record rejected", "reason", "malformed")
		return false
	}
	return e.RegisterVoter(v)
}

// Cast records a vote. Checks run in order: registration, candidate, prior vote.
func (e *Engine) Cast(voterID, candidateID string) (models.Receipt, error) {
	if _, ok := e.registered[voterID]; !ok {
		return models.Receipt{}, ErrVoterNotRegistered
	}
	if !e.candidateExists(candidateID) {
		return models.Receipt{}, ErrCandidateNotFound
	}
	if _, ok := e.voted[voterID]; ok {
		return models.Receipt{}, ErrAlreadyVoted
	}

	e.tally[candidateID]++
	e.voted[voterID] = struct{}{}

	return models.Receipt{VoterID: voterID, CandidateID: candidateID}, nil
}

// CastVote records a vote and hands the outcome to exactly one continuation,
// returning its value. With a nil continuation nothing happens and ok is false.
func CastVote[T any](e *Engine, voterID, candidateID string, onSuccess func(models.Receipt) T, onError func(reason string) T) (result T, ok bool) {
	if onSuccess == nil || onError == nil {
		return result, false
	}

	receipt, err := e.Cast(voterID, candidateID)
	if err != nil {
		e.logger.Debug("vote rejected", "voter_id", voterID, "candidate_id", candidateID, "reason", err)
		return onError(err.Error()), true
	}
	return onSuccess(receipt), true
}

// Results returns one record per candidate, ordered by compare.
// A nil compare orders by votes, highest first. The sort is stable, so
// candidates that compare equal keep their original order.
func (e *Engine) Results(compare func(a, b models.Result) int) []models.Result {
	results := make([]models.Result, len(e.candidates))
	for i, c := range e.candidates {
		results[i] = models.Result{
			ID:    c.ID,
			Name:  c.Name,
			Party: c.Party,
			Votes: e.tally[c.ID],
		}
	}

	if compare == nil {
		compare = byVotesDesc
	}
	slices.SortStableFunc(results, compare)

	return results
}

// Winner returns the top result. ok is false when there are no candidates
// or no votes have been cast for anyone.
func (e *Engine) Winner() (winner models.Result, ok bool) {
	results := e.Results(nil)
	if len(results) == 0 || results[0].Votes == 0 {
		return models.Result{}, false
	}
	return results[0], true
}

// Candidates returns a copy of the candidate list in its original order
func (e *Engine) Candidates() []models.Candidate {
	return slices.Clone(e.candidates)
}

// Tally returns a copy of the per-candidate counts
func (e *Engine) Tally() Tally {
	return maps.Clone(e.tally)
}

// RegisteredCount reports how many voters are registered
func (e *Engine) RegisteredCount() int { return len(e.registered) }

// VotedCount reports how many registered voters have cast a vote
func (e *Engine) VotedCount() int { return len(e.voted) }

// IsRegistered reports whether voterID passed registration
func (e *Engine) IsRegistered(voterID string) bool {
	_, ok := e.registered[voterID]
	return ok
}

// HasVoted reports whether voterID has cast its vote
func (e *Engine) HasVoted(voterID string) bool {
	_, ok := e.voted[voterID]
	return ok
}

func (e *Engine) candidateExists(id string) bool {
	return slices.ContainsFunc(e.candidates, func(c models.Candidate) bool {
		return c.ID == id
	})
}

func byVotesDesc(a, b models.Result) int {
	return cmp.Compare(b.Votes, a.Votes)
}
