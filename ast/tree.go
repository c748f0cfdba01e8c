package ast

import (
	"strings"
)

// TraceLabel is the conventional tag of trace/empty constituents: nodes
// with no audible surface form, written (-NONE- *) in treebank sources.
const TraceLabel = "-NONE-"

// Span is a half-open byte range [Start, End) into the source text from
// which a node was parsed. The zero Span means the node was built
// programmatically and carries no position information.
type Span struct {
	Start, End int
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsZero reports whether the span carries no position information.
func (s Span) IsZero() bool {
	return s == Span{}
}

// Contains reports whether the given byte offset falls inside the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Node is one constituent of a parse tree. An interior node has a label
// and at least one child; a leaf (pre-terminal) has a label and the
// surface word. A valid node has exactly one of the two: non-empty
// Children XOR non-empty Word, never both and never neither.
//
// Each node exclusively owns its children. Trees are acyclic, with depth
// bounded by the nesting of the source text.
type Node struct {
	// Label is the constituent tag: NP, VBZ, or a punctuation tag
	// like "." or ",".
	Label string
	// Children are the constituents below this node, in source order.
	// Empty for leaves.
	Children []*Node
	// Word is the surface token of a leaf, e.g. "Chomsky". Empty for
	// interior nodes. Trace nodes carry their placeholder token
	// (typically "*") here like any other leaf.
	Word string
	// Span locates the node's text in the original input, including its
	// surrounding parentheses.
	Span Span
}

// NewLeaf creates a pre-terminal node: (label word). It panics if label
// or word is empty.
func NewLeaf(label, word string) *Node {
	if label == "" {
		panic("ast: leaf must have a label")
	}
	if word == "" {
		panic("ast: leaf must have a word")
	}
	return &Node{Label: label, Word: word}
}

// NewInterior creates a constituent node with the given children. It
// panics if label is empty, no children are given, or any child is nil.
func NewInterior(label string, children ...*Node) *Node {
	if label == "" {
		panic("ast: constituent must have a label")
	}
	if len(children) == 0 {
		panic("ast: constituent must have at least one child")
	}
	for _, child := range children {
		if child == nil {
			panic("ast: constituent child must not be nil")
		}
	}
	return &Node{Label: label, Children: children}
}

// IsLeaf reports whether the node is a pre-terminal, i.e. has no children
// and carries a word.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// IsTrace reports whether the node is a trace/empty constituent: a leaf
// labeled -NONE-.
func (n *Node) IsTrace() bool {
	return n.IsLeaf() && n.Label == TraceLabel
}

// Leaves returns the pre-terminal nodes beneath n in left-to-right order.
// Calling Leaves on a leaf returns the leaf itself.
func (n *Node) Leaves() []*Node {
	return appendLeaves(nil, n)
}

func appendLeaves(leaves []*Node, n *Node) []*Node {
	if n.IsLeaf() {
		return append(leaves, n)
	}
	for _, child := range n.Children {
		leaves = appendLeaves(leaves, child)
	}
	return leaves
}

// Text returns the surface string of the subtree rooted at n: the words
// of its leaves joined by single spaces.
func (n *Node) Text() string {
	leaves := n.Leaves()
	words := make([]string, len(leaves))
	for i, leaf := range leaves {
		words[i] = leaf.Word
	}
	return strings.Join(words, " ")
}

// Equal reports structural equality: same label, word, and recursively
// equal children in the same order. Spans are not compared.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Label != o.Label || n.Word != o.Word || len(n.Children) != len(o.Children) {
		return false
	}
	for i, child := range n.Children {
		if !child.Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// String returns the node in compact bracketed form, e.g.
// (NP (DT a) (NN dog)). It is a debugging aid and performs no
// validation; use the printer package for checked output.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder) {
	sb.WriteByte('(')
	sb.WriteString(n.Label)
	if n.IsLeaf() {
		sb.WriteByte(' ')
		sb.WriteString(n.Word)
	} else {
		for _, child := range n.Children {
			sb.WriteByte(' ')
			child.write(sb)
		}
	}
	sb.WriteByte(')')
}
