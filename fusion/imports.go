package fusion

import (
	"sort"
	"strings"

	"csfuse/fusion/graph"
)

// SystemPrefix is the root segment that marks a framework import; such
// imports sort ahead of everything else.
const SystemPrefix = "System"

// MergeImports deduplicates the raw import pool by canonical text, keeping
// the first occurrence of each directive, and orders the result: System
// imports first, ordinal ascending within each partition.
func MergeImports(imports []*graph.Import) []*graph.Import {
	seen := make(map[string]bool)
	var merged []*graph.Import
	for _, imp := range imports {
		canonical := imp.Canonical()
		if seen[canonical] {
			continue
		}
		seen[canonical] = true
		merged = append(merged, imp)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i].Canonical(), merged[j].Canonical()
		aSystem, bSystem := isSystemImport(a), isSystemImport(b)
		if aSystem != bSystem {
			return aSystem
		}
		return a < b
	})
	return merged
}

func isSystemImport(canonical string) bool {
	return rootSegment(canonical) == SystemPrefix
}

// rootSegment extracts the first dotted segment of the imported scope,
// skipping directive keywords and resolving alias forms to their target.
func rootSegment(canonical string) string {
	text := strings.ReplaceAll(canonical, ";", " ")
	fields := strings.Fields(text)
	for len(fields) > 0 {
		keyword := fields[0]
		if keyword != "global" && keyword != "using" && keyword != "static" && keyword != "unsafe" {
			break
		}
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return ""
	}
	// alias form: using Alias = Target.Path; the target decides the partition
	name := fields[len(fields)-1]
	if idx := strings.Index(name, "."); idx >= 0 {
		name = name[:idx]
	}
	return name
}
