package ast

import (
	"strings"
)

// Forest is the ordered collection of parse trees read from one input
// text, typically one tree per sentence. Tree order matches input order
// and is semantically meaningful: downstream discourse analysis depends
// on the sentence sequence.
type Forest struct {
	// Trees are the top-level constituents, in input order.
	Trees []*Node
	// Comments are the input's comment lines (first non-blank characters
	// ";;"), kept verbatim and in order. They carry corpus provenance and
	// are not attached to any particular tree.
	Comments []string

	fileInfo *FileInfo
}

// NewForest assembles a forest from parsed trees and the source file
// details accumulated during lexing. Hand-built forests can use a
// *Forest literal instead; they simply have no file info.
func NewForest(info *FileInfo, comments []string, trees ...*Node) *Forest {
	return &Forest{
		Trees:    trees,
		Comments: comments,
		fileInfo: info,
	}
}

// File returns information about the source text this forest was parsed
// from, or nil for a forest built programmatically.
func (f *Forest) File() *FileInfo {
	return f.fileInfo
}

// Len returns the number of trees in the forest.
func (f *Forest) Len() int {
	return len(f.Trees)
}

// Metadata looks up a "Key: value" pair in the forest's comment lines,
// following the corpus header convention
//
//	;; Source: tiger corpus release 2
//	;; License: CC-BY
//	;; Parser: human-corrected
//
// It returns the trimmed value of the first line whose key matches.
func (f *Forest) Metadata(key string) (string, bool) {
	for _, line := range f.Comments {
		rest := strings.TrimSpace(line)
		rest = strings.TrimPrefix(rest, ";;")
		k, v, ok := strings.Cut(rest, ":")
		if !ok {
			continue
		}
		if strings.TrimSpace(k) == key {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}

// Text returns the surface strings of the forest's trees, one sentence
// per line.
func (f *Forest) Text() string {
	sentences := make([]string, len(f.Trees))
	for i, tree := range f.Trees {
		sentences[i] = tree.Text()
	}
	return strings.Join(sentences, "\n")
}

// Equal reports whether both forests hold structurally equal trees in the
// same order. Comments and source file details are not compared; see
// Node.Equal for what structural equality means.
func (f *Forest) Equal(o *Forest) bool {
	if f == nil || o == nil {
		return f == o
	}
	if len(f.Trees) != len(o.Trees) {
		return false
	}
	for i, tree := range f.Trees {
		if !tree.Equal(o.Trees[i]) {
			return false
		}
	}
	return true
}
