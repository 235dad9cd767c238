// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "github.com/danielhkuo/panchayat/models"

// CountVotesInRegions sums the votes of a region and all of its descendants.
// A nil region counts as zero. The sum saturates rather than overflowing.
// Cyclic trees are not detected.
func CountVotesInRegions(node *models.RegionNode) int {
	if node == nil {
		return 0
	}

	total := node.Votes
	for _, sub := range node.SubRegions {
		total = addInt(total, CountVotesInRegions(sub))
	}
	return total
}

// ParseRegion builds a region tree from a decoded document value.
// Anything other than an object yields nil; a non-numeric "votes" is 0
// and a non-list "subRegions" is empty. Votes outside the int range are
// clamped to it, and NaN is 0.
func ParseRegion(raw any) *models.RegionNode {
	fields, ok := asObject(raw)
	if !ok {
		return nil
	}

	node := &models.RegionNode{}
	node.Name, _ = fields["name"].(string)
	if votes, ok := number(fields["votes"]); ok {
		node.Votes = toInt(votes)
	}

	subs, _ := fields["subRegions"].([]any)
	node.SubRegions = make([]*models.RegionNode, 0, len(subs))
	for _, sub := range subs {
		node.SubRegions = append(node.SubRegions, ParseRegion(sub))
	}

	return node
}

// asObject accepts the map shapes produced by encoding/json and yaml.v3
func asObject(raw any) (map[string]any, bool) {
	switch m := raw.(type) {
	case map[string]any:
		return m, m != nil
	case models.VoterRecord:
		return m, m != nil
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			if key, ok := k.(string); ok {
				out[key] = v
			}
		}
		return out, true
	default:
		return nil, false
	}
}
