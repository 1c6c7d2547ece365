package fusion

import "strings"

// DefaultNamespace is used when no forced name is given and the inputs
// declare no namespaces at all.
const DefaultNamespace = "Fused"

// ResolveNamespace picks the root namespace for the fused output. A forced
// name wins without validation against the observed names; otherwise the
// most frequent first dotted segment wins, ordinal-smallest on a tie.
func ResolveNamespace(names []string, forced string) string {
	if forced := strings.TrimSpace(forced); forced != "" {
		return forced
	}
	if len(names) == 0 {
		return DefaultNamespace
	}

	counts := make(map[string]int)
	for _, name := range names {
		segment := name
		if idx := strings.Index(segment, "."); idx >= 0 {
			segment = segment[:idx]
		}
		counts[segment]++
	}

	var winner string
	var best int
	for segment, count := range counts {
		if count > best || (count == best && segment < winner) {
			winner, best = segment, count
		}
	}
	return winner
}
