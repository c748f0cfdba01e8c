// Package spans maps byte offsets in treebank source text back to the
// parse tree constituents that cover them. An Index is built once from a
// parsed forest and then answers point queries: the innermost node at an
// offset, or the full chain of constituents from the tree root down.
package spans

import (
	"github.com/treebankio/treebank/ast"
	"github.com/treebankio/treebank/internal/interval"
	"github.com/treebankio/treebank/walk"
)

// Index answers offset queries against the nodes of a single forest.
//
// Only nodes with non-zero spans are indexed. Nodes built
// programmatically (or spans cleared by a rewrite) are invisible to
// queries, but their descendants remain reachable if they kept spans.
type Index struct {
	nesting interval.Nesting[int, *ast.Node]
}

// New builds an index over every spanned node in f.
func New(f *ast.Forest) *Index {
	index := &Index{}
	// Pre-order puts parents before children, which is the
	// outermost-first insertion order the interval collection expects.
	_ = walk.Forest(f, func(node *ast.Node) error {
		if node.Span.IsZero() {
			return nil
		}
		index.nesting.Insert(node.Span.Start, node.Span.End, node)
		return nil
	})
	return index
}

// At returns the innermost node whose span contains the given byte
// offset, or nil if the offset falls outside every constituent (such as
// whitespace between trees).
func (x *Index) At(offset int) *ast.Node {
	entry, ok := x.nesting.Deepest(offset)
	if !ok {
		return nil
	}
	return entry.Value
}

// Path returns the chain of nodes whose spans contain the given byte
// offset, ordered from the outermost (the tree root) to the innermost.
// The result is nil if no node covers the offset.
func (x *Index) Path(offset int) []*ast.Node {
	var path []*ast.Node
	for entry := range x.nesting.At(offset) {
		path = append(path, entry.Value)
	}
	return path
}
