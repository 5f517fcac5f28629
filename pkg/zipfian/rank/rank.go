// Package rank counts token occurrences and orders the vocabulary of a
// document by descending frequency.
package rank

import "sort"

// FrequencyItem pairs a distinct token with its occurrence count.
type FrequencyItem struct {
	Token string
	Count int
}

// RankedItem is a FrequencyItem with its 1-based rank in the
// descending-frequency order.
type RankedItem struct {
	FrequencyItem
	Rank int
}

// Rank counts occurrences per distinct token, sorts by count descending
// and assigns dense ranks starting at 1. If topN > 0 only the topN
// highest-count items are kept; topN <= 0 means no limit.
//
// Ties are broken by first-occurrence order in the token sequence, so
// identical input always produces identical output, including which
// tokens survive truncation when equal counts straddle the cutoff.
func Rank(tokens []string, topN int) []RankedItem {
	items := Count(tokens)

	// stable sort keeps first-occurrence order among equal counts
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Count > items[j].Count
	})

	if topN > 0 && len(items) > topN {
		items = items[:topN]
	}

	ranked := make([]RankedItem, len(items))
	for i, it := range items {
		ranked[i] = RankedItem{FrequencyItem: it, Rank: i + 1}
	}
	return ranked
}

// Count tallies occurrences per distinct token, preserving the order in
// which tokens were first encountered.
func Count(tokens []string) []FrequencyItem {
	indexes := make(map[string]int, len(tokens))
	items := make([]FrequencyItem, 0)

	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if i, ok := indexes[tok]; ok {
			items[i].Count++
			continue
		}
		indexes[tok] = len(items)
		items = append(items, FrequencyItem{Token: tok, Count: 1})
	}
	return items
}
