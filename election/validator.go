// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"slices"

	"github.com/danielhkuo/panchayat/models"
)

// DefaultMinAge is the minimum voter age for registration, and for a
// validator whose Rules leave MinAge unset.
const DefaultMinAge = 18

// Rules configures a vote validator.
// A nil MinAge means DefaultMinAge; an explicit value, including 0, is kept.
type Rules struct {
	MinAge         *int     `json:"minAge" yaml:"minAge"`
	RequiredFields []string `json:"requiredFields" yaml:"requiredFields"`
}

// MinAge returns a pointer for Rules.MinAge
func MinAge(age int) *int {
	return &age
}

// Validation is the verdict on one voter record. Reason is empty when Valid.
type Validation struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// Validator checks a voter record against a fixed set of Rules
type Validator func(models.VoterRecord) Validation

// NewVoteValidator returns a reusable check for voter records.
// It is independent of any Engine; RegisterVoter never calls it.
func NewVoteValidator(rules Rules) Validator {
	minAge := DefaultMinAge
	if rules.MinAge != nil {
		minAge = *rules.MinAge
	}
	// Later changes to the caller's slice must not leak into the validator
	required := slices.Clone(rules.RequiredFields)

	return func(r models.VoterRecord) Validation {
		if r == nil {
			return Validation{Reason: models.ReasonInvalidVoter}
		}

		for _, field := range required {
			if _, ok := r[field]; !ok {
				return Validation{Reason: models.ReasonMissingField + field}
			}
		}

		// NaN compares false and passes
		age, ok := number(r["age"])
		if !ok || age < float64(minAge) {
			return Validation{Reason: models.ReasonUnderage}
		}

		return Validation{Valid: true}
	}
}
