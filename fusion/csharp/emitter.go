package csharp

import (
	"strings"

	"csfuse/fusion/graph"
)

const indent = "    "

// Emitter renders a merged unit as C# source text: the merged using
// directives followed by one namespace block holding every declaration. It
// is a pure function of the unit; the generated banner is prepended by the
// assembler outside the emitted tree.
type Emitter struct{}

func (e *Emitter) Emit(unit *graph.MergedUnit) ([]byte, error) {
	builder := &strings.Builder{}

	for _, imp := range unit.Imports {
		builder.WriteString(imp.Text)
		builder.WriteString("\n")
	}
	if len(unit.Imports) > 0 {
		builder.WriteString("\n")
	}

	builder.WriteString("namespace ")
	builder.WriteString(unit.RootNamespace)
	builder.WriteString("\n{\n")

	for i, declaration := range unit.Declarations {
		if i > 0 {
			builder.WriteString("\n")
		}
		for _, line := range declaration.Leading {
			writeIndented(builder, line)
		}
		for _, line := range strings.Split(declaration.Text, "\n") {
			writeIndented(builder, line)
		}
	}

	builder.WriteString("}\n")
	return []byte(builder.String()), nil
}

func writeIndented(builder *strings.Builder, line string) {
	if strings.TrimSpace(line) != "" {
		builder.WriteString(indent)
		builder.WriteString(line)
	}
	builder.WriteString("\n")
}
