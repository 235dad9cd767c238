// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "maps"

// Tally maps candidate id to vote count
type Tally map[string]int

// TallyPure returns a new tally with candidateID incremented by one.
// current is never modified; a nil tally is treated as empty.
func TallyPure(current Tally, candidateID string) Tally {
	next := maps.Clone(current)
	if next == nil {
		next = make(Tally, 1)
	}
	next[candidateID]++
	return next
}

// Total returns the sum of all counts
func (t Tally) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}
