package csharp

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"

	"csfuse/fusion/graph"
)

// SyntaxError reports the first invalid construct found in a source file.
// The run aborts on it; nothing is recovered.
type SyntaxError struct {
	Path   string
	Line   int
	Column int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: syntax error", e.Path, e.Line, e.Column)
}

// Parser turns raw C# text into a parsed unit.
type Parser struct{}

// NewParser creates a new C# parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses one source file into its file-level using directives and
// top-level members. A file that is not syntactically valid C# fails with a
// *SyntaxError.
func (p *Parser) Parse(ctx context.Context, source *graph.SourceFile) (*graph.ParsedUnit, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(csharp.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, source.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", source.Path, err)
	}

	root := tree.RootNode()
	if bad := firstErrorNode(root); bad != nil {
		point := bad.StartPoint()
		return nil, &SyntaxError{
			Path:   source.Path,
			Line:   int(point.Row) + 1,
			Column: int(point.Column) + 1,
		}
	}

	unit := &graph.ParsedUnit{Source: source}
	unit.Imports, unit.Members = collectScopeBody(root, source.Content, nil)
	return unit, nil
}

// firstErrorNode locates the first error or missing node of the tree, if any.
// Tree-sitter parses are error-tolerant, so invalid input has to be detected
// explicitly.
func firstErrorNode(node *sitter.Node) *sitter.Node {
	if node.Type() == "ERROR" || node.IsMissing() {
		return node
	}
	if !node.HasError() {
		return nil
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if bad := firstErrorNode(node.Child(i)); bad != nil {
			return bad
		}
	}
	return node
}
