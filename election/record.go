// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"encoding/json"
	"math"

	"github.com/danielhkuo/panchayat/models"
)

// VoterFromRecord converts a record into a typed voter.
// ok is false when id or name is not a string, or age is not a number.
// NaN ages are refused; they have no integer form.
func VoterFromRecord(r models.VoterRecord) (*models.Voter, bool) {
	if r == nil {
		return nil, false
	}

	id, ok := r["id"].(string)
	if !ok {
		return nil, false
	}
	name, ok := r["name"].(string)
	if !ok {
		return nil, false
	}
	age, ok := number(r["age"])
	if !ok || math.IsNaN(age) {
		return nil, false
	}

	// Flooring keeps the comparison against a whole minimum age intact
	return &models.Voter{ID: id, Name: name, Age: toInt(math.Floor(age))}, true
}

// toInt converts f to an int, saturating at the int range.
// NaN converts to 0.
func toInt(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= float64(math.MaxInt):
		return math.MaxInt
	case f <= float64(math.MinInt):
		return math.MinInt
	default:
		return int(f)
	}
}

// addInt adds two ints, saturating instead of wrapping
func addInt(a, b int) int {
	sum := a + b
	if a > 0 && b > 0 && sum < 0 {
		return math.MaxInt
	}
	if a < 0 && b < 0 && sum >= 0 {
		return math.MinInt
	}
	return sum
}

// number reports whether v holds a numeric value, as produced by the JSON
// or YAML decoders or by typed Go callers.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
