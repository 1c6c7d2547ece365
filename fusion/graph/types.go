package graph

import "strings"

// SourceFile is one input file, immutable once read.
type SourceFile struct {
	Path    string
	Content []byte
}

// Member is one entry of a scope body: either a *Declaration or a nested
// *NamespaceScope.
type Member interface {
	member()
}

// Declaration is one opaque top-level construct (class, interface, enum,
// delegate, global statement, ...). Text holds the node source dedented to
// column zero; Leading holds the comment lines attached ahead of it.
// Declarations are never deduplicated or merged with each other.
type Declaration struct {
	Text    string
	Leading []string
}

func (*Declaration) member() {}

// Import is a single using directive. Text keeps the exact source form of
// the occurrence it was created from.
type Import struct {
	Text string
}

// Canonical returns the dedup key for the import: the directive text with
// whitespace runs collapsed and surrounding trivia trimmed. The semantic
// path content is preserved exactly.
func (i *Import) Canonical() string {
	text := strings.Join(strings.Fields(i.Text), " ")
	return strings.ReplaceAll(text, " ;", ";")
}

// NamespaceScope mirrors one namespace block of a parsed tree. The tree is
// always acyclic since it is built from a syntax tree.
type NamespaceScope struct {
	Name    string
	Imports []*Import
	Members []Member
}

func (*NamespaceScope) member() {}

// ParsedUnit is the parse result of one source file: the file-level using
// directives plus the top-level members in pre-order.
type ParsedUnit struct {
	Source  *SourceFile
	Imports []*Import
	Members []Member
}

// MergedUnit is the sole output artifact of the core pipeline: deduplicated
// ordered imports and the flattened declaration list under one root
// namespace. It contains no scope nodes.
type MergedUnit struct {
	RootNamespace string
	Imports       []*Import
	Declarations  []*Declaration
}
