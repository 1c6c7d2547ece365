package graph

// Emitter renders a merged unit back to source text. It must be a pure,
// deterministic function of the unit.
type Emitter interface {
	Emit(unit *MergedUnit) ([]byte, error)
}
