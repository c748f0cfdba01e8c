// Package printer serializes parse trees back into Penn Treebank
// bracketed text.
//
// It is the inverse of the parser package: for any well-formed forest,
// parsing the printed output yields a structurally equal forest. The
// zero Options value produces the compact one-line-per-tree form used
// for storage; setting Indent selects conventional Treebank
// pretty-printing, with closing parentheses piling up after the last
// child.
//
// The printer performs no escaping. Atoms that cannot be represented in
// bracketed text (empty, or containing whitespace or parentheses) fail
// with ErrInvalidAtom rather than producing unparseable output.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/treebankio/treebank/ast"
)

// Options customizes the output. The zero value is the compact form.
type Options struct {
	// Indent is the number of spaces added per nesting level. Zero
	// selects the compact form: a single space between elements and no
	// newlines.
	Indent int
	// SentenceSeparator is written between successive trees. Empty
	// means the default of two newlines, leaving one blank line between
	// sentences.
	SentenceSeparator string
	// OmitComments suppresses the forest's comment lines. By default
	// they are written first, verbatim, one per line.
	OmitComments bool
}

// Print renders the forest as bracketed text.
func Print(f *ast.Forest, opts Options) (string, error) {
	p := newPrinter(opts)
	if err := p.forest(f); err != nil {
		return "", err
	}
	return p.sb.String(), nil
}

// Fprint renders the forest as bracketed text into w. Nothing is
// written when the forest fails validation.
func Fprint(w io.Writer, f *ast.Forest, opts Options) error {
	text, err := Print(f, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}

// PrintTree renders a single tree as bracketed text.
func PrintTree(n *ast.Node, opts Options) (string, error) {
	p := newPrinter(opts)
	if err := p.tree(n, 0); err != nil {
		return "", err
	}
	return p.sb.String(), nil
}

// FprintTree renders a single tree as bracketed text into w. Nothing is
// written when the tree fails validation.
func FprintTree(w io.Writer, n *ast.Node, opts Options) error {
	text, err := PrintTree(n, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}

type printer struct {
	opts Options
	sep  string
	sb   strings.Builder
}

func newPrinter(opts Options) *printer {
	sep := opts.SentenceSeparator
	if sep == "" {
		sep = "\n\n"
	}
	return &printer{opts: opts, sep: sep}
}

func (p *printer) forest(f *ast.Forest) error {
	if !p.opts.OmitComments {
		for _, comment := range f.Comments {
			if err := checkComment(comment); err != nil {
				return err
			}
			p.sb.WriteString(comment)
			p.sb.WriteByte('\n')
		}
		if len(f.Comments) > 0 && len(f.Trees) > 0 {
			p.sb.WriteByte('\n')
		}
	}
	for i, tree := range f.Trees {
		if i > 0 {
			p.sb.WriteString(p.sep)
		}
		if err := p.tree(tree, 0); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) tree(n *ast.Node, level int) error {
	if err := checkNode(n); err != nil {
		return err
	}
	p.sb.WriteByte('(')
	p.sb.WriteString(n.Label)
	if len(n.Children) == 0 {
		// A pre-terminal stays on one unit in every mode.
		p.sb.WriteByte(' ')
		p.sb.WriteString(n.Word)
		p.sb.WriteByte(')')
		return nil
	}
	for _, child := range n.Children {
		// Interior children open their own line; pre-terminals stay on
		// the parent's line.
		if p.opts.Indent > 0 && len(child.Children) > 0 {
			p.sb.WriteByte('\n')
			p.pad((level + 1) * p.opts.Indent)
		} else {
			p.sb.WriteByte(' ')
		}
		if err := p.tree(child, level+1); err != nil {
			return err
		}
	}
	p.sb.WriteByte(')')
	return nil
}

func (p *printer) pad(width int) {
	for i := 0; i < width; i++ {
		p.sb.WriteByte(' ')
	}
}

func checkNode(n *ast.Node) error {
	if n == nil {
		return fmt.Errorf("nil node: %w", ErrInvalidNode)
	}
	hasWord, hasChildren := n.Word != "", len(n.Children) > 0
	if hasWord && hasChildren {
		return fmt.Errorf("node %q has both a word and children: %w", n.Label, ErrInvalidNode)
	}
	if !hasWord && !hasChildren {
		return fmt.Errorf("node %q has neither a word nor children: %w", n.Label, ErrInvalidNode)
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
		return fmt.Errorf("empty %s: %w", what, ErrInvalidAtom)
	}
	if strings.ContainsAny(atom, "() \t\n\r\f\v") {
		return fmt.Errorf("%s %q contains whitespace or a parenthesis: %w", what, atom, ErrInvalidAtom)
	}
	return nil
}

func checkComment(comment string) error {
	if strings.ContainsAny(comment, "\n\r") {
		return fmt.Errorf("comment %q contains a line break: %w", comment, ErrInvalidComment)
	}
	if !strings.HasPrefix(strings.TrimLeft(comment, " \t"), ";;") {
		return fmt.Errorf("comment %q does not begin with %q: %w", comment, ";;", ErrInvalidComment)
	}
	return nil
}
