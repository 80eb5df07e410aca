package search

import "slices"

// Match is one entry of a search pass: its global index and whether it
// matched the member key rather than the rendered value.
type Match struct {
	Index int
	IsKey bool
}

// Resolve finds the span of nodeText to highlight for the match with global
// index, given every match recorded for the same node in discovery order.
// Key matches, unknown indices and ranks with no corresponding occurrence in
// nodeText all report false.
func Resolve(matches []Match, index int, nodeText, searchText string, caseSensitive bool) (Occurrence, bool) {
	local := slices.IndexFunc(matches, func(m Match) bool { return m.Index == index })
	if local < 0 || matches[local].IsKey {
		return Occurrence{}, false
	}

	rank := 0
	for _, m := range matches[:local] {
		if !m.IsKey {
			rank++
		}
	}

	occurrences := FindAll(nodeText, searchText, caseSensitive)
	if rank >= len(occurrences) {
		return Occurrence{}, false
	}
	return occurrences[rank], true
}
