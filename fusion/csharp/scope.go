package csharp

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"csfuse/fusion/graph"
)

// collectScopeBody converts the named children of a compilation unit or a
// namespace body into imports and members, keeping pre-order. Comments are
// accumulated and attached as leading trivia of the next declaration. The
// skip node, when set, is excluded from the walk (the name node of a
// file-scoped namespace, which is a direct child of the declaration).
func collectScopeBody(node *sitter.Node, src []byte, skip *sitter.Node) ([]*graph.Import, []graph.Member) {
	var imports []*graph.Import
	var members []graph.Member
	var leading []string

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if skip != nil && child.StartByte() == skip.StartByte() {
			continue
		}
		switch child.Type() {
		case "comment":
			leading = append(leading, dedentNode(child, src))
		case "using_directive":
			imports = append(imports, &graph.Import{Text: child.Content(src)})
			leading = nil
		case "namespace_declaration", "file_scoped_namespace_declaration":
			members = append(members, buildScope(child, src))
			leading = nil
		default:
			members = append(members, &graph.Declaration{
				Text:    dedentNode(child, src),
				Leading: leading,
			})
			leading = nil
		}
	}
	return imports, members
}

// buildScope converts one namespace declaration node. Block-bodied
// namespaces keep their members under a declaration_list body node;
// file-scoped namespaces hold them as direct children next to the name.
func buildScope(node *sitter.Node, src []byte) *graph.NamespaceScope {
	scope := &graph.NamespaceScope{}
	nameNode := node.ChildByFieldName("name")
	if nameNode != nil {
		scope.Name = nameNode.Content(src)
	}

	if body := node.ChildByFieldName("body"); body != nil {
		scope.Imports, scope.Members = collectScopeBody(body, src, nil)
		return scope
	}
	scope.Imports, scope.Members = collectScopeBody(node, src, nameNode)
	return scope
}

// dedentNode returns the node text with the node's start column stripped
// from continuation lines, so declarations lifted out of nested scopes emit
// at column zero.
func dedentNode(node *sitter.Node, src []byte) string {
	text := node.Content(src)
	column := int(node.StartPoint().Column)
	if column == 0 || !strings.Contains(text, "\n") {
		return text
	}
	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = trimIndent(lines[i], column)
	}
	return strings.Join(lines, "\n")
}

func trimIndent(line string, width int) string {
	for i := 0; i < width && line != ""; i++ {
		if line[0] != ' ' && line[0] != '\t' {
			break
		}
		line = line[1:]
	}
	return line
}
