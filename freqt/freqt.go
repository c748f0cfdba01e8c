// Package freqt exports forests in the input format of the FREQT
// frequent-subtree miner.
//
// Each sentence becomes one line of nested parentheses with no
// whitespace: (label(child)(child)…). With Options.IncludePOS every
// terminal keeps its part-of-speech layer, (NNP(Chomsky)); without it
// the surface word is wrapped directly, (Chomsky). Comments are never
// emitted since the FREQT format has no comment syntax.
package freqt

import (
	"fmt"
	"io"
	"strings"

	"github.com/treebankio/treebank/ast"
	"github.com/treebankio/treebank/printer"
)

// Options customizes the export.
type Options struct {
	// IncludePOS keeps the part-of-speech layer on terminals. Mining
	// token sequences usually wants it off; mining tag structure wants
	// it on.
	IncludePOS bool
}

// Print renders the forest in FREQT form, one sentence per line.
func Print(f *ast.Forest, opts Options) (string, error) {
	var sb strings.Builder
	for i, tree := range f.Trees {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if err := write(&sb, tree, opts); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

// Fprint renders the forest in FREQT form into w. Nothing is written
// when the forest fails validation.
func Fprint(w io.Writer, f *ast.Forest, opts Options) error {
	text, err := Print(f, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}

func write(sb *strings.Builder, n *ast.Node, opts Options) error {
	if err := check(n); err != nil {
		return err
	}
	if n.Word != "" {
		if opts.IncludePOS {
			sb.WriteByte('(')
			sb.WriteString(n.Label)
		}
		sb.WriteByte('(')
		sb.WriteString(n.Word)
		sb.WriteByte(')')
		if opts.IncludePOS {
			sb.WriteByte(')')
		}
		return nil
	}
	sb.WriteByte('(')
	sb.WriteString(n.Label)
	for _, child := range n.Children {
		if err := write(sb, child, opts); err != nil {
			return err
		}
	}
	sb.WriteByte(')')
	return nil
}

// check applies the same atom and invariant rules as the printer
// package; FREQT output is paren-delimited too, so the same content
// would corrupt it.
func check(n *ast.Node) error {
	if n == nil {
		return fmt.Errorf("nil node: %w", printer.ErrInvalidNode)
	}
	hasWord, hasChildren := n.Word != "", len(n.Children) > 0
	if hasWord && hasChildren {
		return fmt.Errorf("node %q has both a word and children: %w", n.Label, printer.ErrInvalidNode)
	}
	if !hasWord && !hasChildren {
		return fmt.Errorf("node %q has neither a word nor children: %w", n.Label, printer.ErrInvalidNode)
	}
	if err := checkAtom("label", n.Label); err != nil {
		return err
	}
	if hasWord {
		return checkAtom("word", n.Word)
	}
	return nil
}

func checkAtom(what, atom string) error {
	if atom == "" {
		return fmt.Errorf("empty %s: %w", what, printer.ErrInvalidAtom)
	}
	if strings.ContainsAny(atom, "() \t\n\r\f\v") {
		return fmt.Errorf("%s %q contains whitespace or a parenthesis: %w", what, atom, printer.ErrInvalidAtom)
	}
	return nil
}
