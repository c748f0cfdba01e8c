package ast

import (
	"slices"
)

// Transform returns a copy of the forest containing only the nodes for
// which keep returns true. Children of dropped nodes are dropped with
// them. Interior nodes whose children are all removed are themselves
// removed, and trees reduced to nothing are dropped from the forest.
//
// The input forest is never modified, and the result shares no nodes
// with it, so both can safely be used (and further transformed)
// independently.
func Transform(f *Forest, keep func(*Node) bool) *Forest {
	out := &Forest{
		Comments: slices.Clone(f.Comments),
		fileInfo: f.fileInfo,
	}
	for _, tree := range f.Trees {
		if t := transformNode(tree, keep); t != nil {
			out.Trees = append(out.Trees, t)
		}
	}
	return out
}

func transformNode(n *Node, keep func(*Node) bool) *Node {
	if !keep(n) {
		return nil
	}
	copied := *n
	if n.IsLeaf() {
		return &copied
	}
	children := make([]*Node, 0, len(n.Children))
	for _, child := range n.Children {
		if c := transformNode(child, keep); c != nil {
			children = append(children, c)
		}
	}
	if len(children) == 0 {
		// An interior node stripped of all children would violate the
		// children-XOR-word invariant, so it goes too.
		return nil
	}
	copied.Children = children
	return &copied
}

// StripTraces returns a copy of the forest with all trace/empty
// constituents ((-NONE- *) pre-terminals) removed, along with any
// interior nodes left childless by the removal. The parser never elides
// traces itself; this is the separate, opt-in policy for consumers that
// do not want them.
func StripTraces(f *Forest) *Forest {
	return Transform(f, func(n *Node) bool {
		return !n.IsTrace()
	})
}
