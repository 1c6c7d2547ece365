package fusion

import (
	"fmt"
	"strings"
	"time"

	"csfuse/fusion/graph"
)

const rule = "//------------------------------------------------------------------------------\n"

// Banner carries the identity stamped at the top of the fused file. Version
// and timestamp are injected by the caller so a run stays a pure function of
// its inputs.
type Banner struct {
	Tool        string
	Version     string
	GeneratedAt time.Time
}

// Assembler wraps the merged unit into the final output text: the emitted
// tree prefixed with a literal banner block. The banner is plain text, not
// part of the tree, so the emitter cannot normalize it away.
type Assembler struct {
	emitter graph.Emitter
}

// NewAssembler creates an assembler rendering through the given emitter.
func NewAssembler(emitter graph.Emitter) *Assembler {
	return &Assembler{emitter: emitter}
}

// Assemble renders the merged unit and returns the banner-prefixed output
// together with the fingerprint of the body.
func (a *Assembler) Assemble(unit *graph.MergedUnit, banner Banner) ([]byte, uint64, error) {
	body, err := a.emitter.Emit(unit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to emit fused tree: %w", err)
	}
	fingerprint, err := graph.Fingerprint(body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fingerprint fused body: %w", err)
	}

	builder := &strings.Builder{}
	builder.WriteString(rule)
	builder.WriteString("// <auto-generated>\n")
	fmt.Fprintf(builder, "//     Fused by %s %s on %s.\n",
		banner.Tool, banner.Version, banner.GeneratedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(builder, "//     Fingerprint: %016x\n", fingerprint)
	builder.WriteString("//     Changes to this file will be lost when it is regenerated.\n")
	builder.WriteString("// </auto-generated>\n")
	builder.WriteString(rule)
	builder.WriteString("\n")
	builder.Write(body)
	return []byte(builder.String()), fingerprint, nil
}
