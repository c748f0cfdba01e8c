// Package ast defines types for modeling Penn Treebank bracketed
// parse trees.
//
// The model is deliberately small. A *Node is one constituent: an
// interior node carries a label and an ordered list of children, a
// leaf (pre-terminal) carries a label and the surface word. Exactly
// one of the two holds for every valid node, never both and never
// neither. A *Forest is the ordered collection of top-level trees
// read from one input text, typically one tree per sentence, together
// with the input's provenance comment lines.
//
// Position information is tracked using a *FileInfo, calling its
// AddLine method as the input is scanned by the lexer. Each node
// records the half-open byte range of its source text in its Span
// field; a *FileInfo resolves byte offsets to line/column positions.
// Nodes built programmatically have zero spans, and forests built
// programmatically have no FileInfo.
//
// Creation of nodes should use the NewLeaf and NewInterior factory
// functions, which enforce the children-XOR-word invariant. Struct
// literals are possible but nodes violating the invariant will be
// rejected during serialization.
//
// A forest is immutable after construction by convention: consumers
// that need a modified view use Transform (or a wrapper like
// StripTraces), which copies rather than mutates, so trees can be
// shared freely across goroutines and callers.
package ast
