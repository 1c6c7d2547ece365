package fusion

import (
	"path/filepath"

	"csfuse/fusion/graph"
)

// Collector walks parsed units in order, flattens every namespace scope into
// a single declaration list and pools imports and namespace names along the
// way. Declarations keep their encounter order and are never deduplicated.
type Collector struct {
	annotate bool
}

// NewCollector creates a collector. When annotate is set, each collected
// declaration gets one leading comment line naming its originating file.
func NewCollector(annotate bool) *Collector {
	return &Collector{annotate: annotate}
}

type collection struct {
	declarations []*graph.Declaration
	imports      []*graph.Import
	namespaces   []string
}

// Collect produces the flat declaration list, the raw import pool and the
// observed namespace names across all units.
func (c *Collector) Collect(units []*graph.ParsedUnit) ([]*graph.Declaration, []*graph.Import, []string) {
	acc := &collection{}
	for _, unit := range units {
		acc.imports = append(acc.imports, unit.Imports...)
		c.walk(unit.Members, filepath.Base(unit.Source.Path), acc)
	}
	return acc.declarations, acc.imports, acc.namespaces
}

// walk recurses through scope members in document order. Nested scopes emit
// no marker of their own: their name and imports are recorded and their
// members surface at the single output level.
func (c *Collector) walk(members []graph.Member, origin string, acc *collection) {
	for _, member := range members {
		switch node := member.(type) {
		case *graph.NamespaceScope:
			acc.namespaces = append(acc.namespaces, node.Name)
			acc.imports = append(acc.imports, node.Imports...)
			c.walk(node.Members, origin, acc)
		case *graph.Declaration:
			if c.annotate {
				node.Leading = append([]string{"// " + origin}, node.Leading...)
			}
			acc.declarations = append(acc.declarations, node)
		}
	}
}
