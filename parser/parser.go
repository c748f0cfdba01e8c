package parser

import (
	"fmt"
	"io"

	"github.com/treebankio/treebank/ast"
	"github.com/treebankio/treebank/reporter"
)

// DefaultMaxDepth is the constituent nesting limit applied when
// Options.MaxDepth is zero. Natural-language trees rarely nest past a few
// dozen levels, so the default only rejects degenerate or malicious input.
const DefaultMaxDepth = 1000

// Options customizes the parser.
type Options struct {
	// MaxDepth caps how deeply constituents may nest. Input that nests
	// deeper fails with an error positioned at the offending "(". If
	// zero or negative, DefaultMaxDepth is used.
	MaxDepth int
}

// Parse reads all of r and parses the contents like ParseData. A read
// failure is returned as-is, wrapped with the filename; it is not
// reported to the handler since it says nothing about the source text.
func Parse(filename string, r io.Reader, handler *reporter.Handler) (*ast.Forest, error) {
	return ParseWithOptions(filename, r, handler, Options{})
}

// ParseWithOptions parses the contents of r like Parse, with explicit
// options.
func ParseWithOptions(filename string, r io.Reader, handler *reporter.Handler, opts Options) (*ast.Forest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return ParseDataWithOptions(filename, data, handler, opts)
}

// ParseData parses treebank source text into a forest using default
// options. The filename is used only for positions; data is not read
// from disk.
//
// All problems found in the source are delivered through handler. The
// returned forest is non-nil if and only if the returned error is nil:
// there are no partial results. If the handler chose to swallow errors,
// the returned error is reporter.ErrInvalidSource.
func ParseData(filename string, data []byte, handler *reporter.Handler) (*ast.Forest, error) {
	return ParseDataWithOptions(filename, data, handler, Options{})
}

// ParseDataWithOptions parses treebank source text like ParseData, with
// explicit options.
func ParseDataWithOptions(filename string, data []byte, handler *reporter.Handler, opts Options) (*ast.Forest, error) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	lexer := NewLexer(filename, data, handler)
	p := &treeParser{lexer: lexer, handler: handler, maxDepth: maxDepth}
	if err := p.run(); err != nil {
		if herr := handler.Error(); herr != nil {
			return nil, herr
		}
		return nil, err
	}
	if err := handler.Error(); err != nil {
		// The source was fine but the handler already failed, e.g. on
		// an earlier file handled by the same reporter.
		return nil, err
	}
	return ast.NewForest(lexer.FileInfo(), lexer.Comments(), p.trees...), nil
}

// frame is one constituent under construction: everything between a "("
// and its matching ")".
type frame struct {
	label    string
	start    int
	word     string
	children []*ast.Node
}

// treeParser assembles tokens into trees. The stack mirrors the nesting
// of the source text; the parser's state is fully determined by the top
// frame: no frame means only "(" is acceptable, a frame without a label
// needs its label atom, a frame with a word can only close, and any
// other frame accepts children, a word, or ")".
type treeParser struct {
	lexer    *Lexer
	handler  *reporter.Handler
	maxDepth int

	stack []frame
	trees []*ast.Node
}

func (p *treeParser) run() error {
	for {
		tok, err := p.lexer.Next()
		if err != nil {
			return err
		}
		if tok.Kind == TokenEOF {
			return p.atEOF(tok)
		}
		switch {
		case len(p.stack) == 0:
			err = p.atTopLevel(tok)
		case p.top().label == "":
			err = p.atLabel(tok)
		case p.top().word != "":
			err = p.afterWord(tok)
		default:
			err = p.inBody(tok)
		}
		if err != nil {
			return err
		}
	}
}

func (p *treeParser) top() *frame {
	return &p.stack[len(p.stack)-1]
}

func (p *treeParser) pos(tok Token) ast.SourcePos {
	return p.lexer.FileInfo().SourcePos(tok.Offset)
}

// errAt reports a syntax error at the token's position and always
// returns a non-nil error, so that parsing stops even when the handler
// swallows the report.
func (p *treeParser) errAt(tok Token, format string, args ...any) error {
	if err := p.handler.HandleErrorf(p.pos(tok), format, args...); err != nil {
		return err
	}
	return reporter.ErrInvalidSource
}

func (p *treeParser) atTopLevel(tok Token) error {
	if tok.Kind != TokenOpenParen {
		return p.errAt(tok, `expected "(" to start a tree, got %s`, tok.describe())
	}
	return p.push(tok)
}

func (p *treeParser) atLabel(tok Token) error {
	if tok.Kind != TokenAtom {
		return p.errAt(tok, `missing label: expected atom after "(", got %s`, tok.describe())
	}
	p.top().label = tok.Text
	return nil
}

func (p *treeParser) afterWord(tok Token) error {
	if tok.Kind != TokenCloseParen {
		return p.errAt(tok, "unexpected %s after terminal word", tok.describe())
	}
	p.pop(tok)
	return nil
}

func (p *treeParser) inBody(tok Token) error {
	switch tok.Kind {
	case TokenOpenParen:
		return p.push(tok)
	case TokenAtom:
		if len(p.top().children) > 0 {
			return p.errAt(tok, "unexpected %s after child constituents", tok.describe())
		}
		p.top().word = tok.Text
		return nil
	default:
		if len(p.top().children) == 0 {
			return p.errAt(tok, `empty constituent: expected a word or child constituent, got ")"`)
		}
		p.pop(tok)
		return nil
	}
}

func (p *treeParser) push(tok Token) error {
	if len(p.stack) == p.maxDepth {
		return p.errAt(tok, "nesting depth exceeds limit of %d", p.maxDepth)
	}
	p.stack = append(p.stack, frame{start: tok.Offset})
	return nil
}

// pop closes the top constituent at the ")" token and attaches the
// finished node to its parent, or to the forest when the stack empties.
func (p *treeParser) pop(tok Token) {
	top := p.top()
	var node *ast.Node
	if top.word != "" {
		node = ast.NewLeaf(top.label, top.word)
	} else {
		node = ast.NewInterior(top.label, top.children...)
	}
	node.Span = ast.Span{Start: top.start, End: tok.Offset + 1}
	p.stack = p.stack[:len(p.stack)-1]
	if len(p.stack) == 0 {
		p.trees = append(p.trees, node)
	} else {
		parent := p.top()
		parent.children = append(parent.children, node)
	}
}

func (p *treeParser) atEOF(tok Token) error {
	if len(p.stack) > 0 {
		return p.errAt(tok, `unbalanced parentheses: %d unclosed "("`, len(p.stack))
	}
	if len(p.trees) == 0 {
		p.handler.HandleWarning(p.pos(tok), ErrNoTrees)
	}
	return nil
}
