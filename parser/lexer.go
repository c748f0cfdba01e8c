package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/treebankio/treebank/ast"
	"github.com/treebankio/treebank/reporter"
)

// TokenKind identifies the lexical shape of a token. Bracketed treebank
// text has exactly three shapes, plus the end-of-input marker.
type TokenKind int

const (
	// TokenEOF marks the end of the input. Its Text is empty and its
	// Offset is the input length.
	TokenEOF TokenKind = iota
	// TokenOpenParen is a literal "(".
	TokenOpenParen
	// TokenCloseParen is a literal ")".
	TokenCloseParen
	// TokenAtom is a maximal run of characters that are neither
	// whitespace nor parentheses: a constituent label or a terminal word.
	TokenAtom
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of input"
	case TokenOpenParen:
		return `"("`
	case TokenCloseParen:
		return `")"`
	case TokenAtom:
		return "atom"
	default:
		return "unknown"
	}
}

// Token is one lexical element of a treebank source text. Offset is the
// byte position of the token's first byte in the original input.
type Token struct {
	Kind   TokenKind
	Text   string
	Offset int
}

// describe renders the token for use in error messages.
func (t Token) describe() string {
	if t.Kind == TokenAtom {
		return fmt.Sprintf("%q", t.Text)
	}
	return t.Kind.String()
}

var errNulChar = errors.New("invalid NUL character")

type runeReader struct {
	data []byte
	pos  int
	err  error
	mark int
}

func (rr *runeReader) readRune() (r rune, size int, err error) {
	if rr.err != nil {
		return 0, 0, rr.err
	}
	if rr.pos == len(rr.data) {
		rr.err = io.EOF
		return 0, 0, rr.err
	}
	r, sz := utf8.DecodeRune(rr.data[rr.pos:])
	if r == utf8.RuneError && sz == 1 {
		rr.err = fmt.Errorf("invalid UTF8 at offset %d: %x", rr.pos, rr.data[rr.pos])
		return 0, 0, rr.err
	}
	rr.pos = rr.pos + sz
	return r, sz, nil
}

func (rr *runeReader) offset() int {
	return rr.pos
}

func (rr *runeReader) unreadRune(sz int) {
	newPos := rr.pos - sz
	if newPos < rr.mark {
		panic("unread past mark")
	}
	rr.pos = newPos
}

func (rr *runeReader) setMark() {
	rr.mark = rr.pos
}

func (rr *runeReader) getMark() string {
	return string(rr.data[rr.mark:rr.pos])
}

// Lexer splits treebank source text into tokens. Next returns the
// following token until the input is exhausted, at which point it keeps
// returning a token of kind TokenEOF. The sequence is restartable:
// construct a new Lexer over the same data to re-scan from the start.
//
// Comment lines (lines whose first non-whitespace characters are ";;")
// are handled before scanning: a preprocessing pass captures them and
// blanks their bytes, so the scanner itself never sees a comment and
// format changes to the comment convention never touch it. The captured
// lines are available from Comments.
type Lexer struct {
	input   *runeReader
	info    *ast.FileInfo
	handler *reporter.Handler

	comments []string
	peeked   *Token
}

// NewLexer creates a Lexer over data. The filename is used only in
// positions attached to tokens and errors. Lexing errors are delivered
// through the handler as well as returned from Next.
func NewLexer(filename string, data []byte, handler *reporter.Handler) *Lexer {
	clean, comments := blankComments(data)
	return &Lexer{
		input:    &runeReader{data: clean},
		info:     ast.NewFileInfo(filename, data),
		handler:  handler,
		comments: comments,
	}
}

// Comments returns the comment lines found in the input, verbatim and in
// input order. They are known as soon as the lexer is constructed.
func (l *Lexer) Comments() []string {
	return l.comments
}

// FileInfo returns the source details the lexer accumulates while
// scanning. Line information is complete only for the portion of the
// input consumed so far.
func (l *Lexer) FileInfo() *ast.FileInfo {
	return l.info
}

// Next returns the next token. Errors are lexical only (invalid UTF-8
// or a NUL byte); bracketed text has no invalid token shapes, so all
// structural validation is the parser's job.
func (l *Lexer) Next() (Token, error) {
	if l.peeked != nil {
		tok := *l.peeked
		l.peeked = nil
		return tok, nil
	}
	return l.lex()
}

// Peek returns the token Next will return next, without consuming it.
func (l *Lexer) Peek() (Token, error) {
	if l.peeked == nil {
		tok, err := l.lex()
		if err != nil {
			return Token{}, err
		}
		l.peeked = &tok
	}
	return *l.peeked, nil
}

func (l *Lexer) lex() (Token, error) {
	for {
		l.input.setMark()
		offset := l.input.offset()
		c, _, err := l.input.readRune()
		if err == io.EOF {
			return Token{Kind: TokenEOF, Offset: offset}, nil
		}
		if err != nil {
			return Token{}, l.addSourceError(offset, err)
		}
		if c == 0 {
			return Token{}, l.addSourceError(offset, errNulChar)
		}

		if strings.ContainsRune(" \n\r\t\f\v", c) {
			l.maybeNewLine(c)
			continue
		}

		switch c {
		case '(':
			return Token{Kind: TokenOpenParen, Text: "(", Offset: offset}, nil
		case ')':
			return Token{Kind: TokenCloseParen, Text: ")", Offset: offset}, nil
		}

		if err := l.readAtom(); err != nil {
			return Token{}, err
		}
		return Token{Kind: TokenAtom, Text: l.input.getMark(), Offset: offset}, nil
	}
}

// readAtom consumes the rest of an atom: everything up to the next
// whitespace, parenthesis, or end of input. Bracket-escape labels like
// -LRB- get no special treatment; only literal parentheses delimit.
func (l *Lexer) readAtom() error {
	for {
		offset := l.input.offset()
		c, sz, err := l.input.readRune()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return l.addSourceError(offset, err)
		}
		if c == 0 {
			return l.addSourceError(offset, errNulChar)
		}
		if c == '(' || c == ')' || strings.ContainsRune(" \n\r\t\f\v", c) {
			l.input.unreadRune(sz)
			return nil
		}
	}
}

func (l *Lexer) maybeNewLine(c rune) {
	if c == '\n' {
		l.info.AddLine(l.input.offset())
	}
}

func (l *Lexer) addSourceError(offset int, err error) reporter.ErrorWithPos {
	ewp, ok := err.(reporter.ErrorWithPos)
	if !ok {
		ewp = reporter.Error(l.info.SourcePos(offset), err)
	}
	_ = l.handler.HandleError(ewp)
	return ewp
}

var utf8Bom = []byte{0xEF, 0xBB, 0xBF}

// blankComments prepares data for the scanner: a leading UTF-8 byte
// order mark and every comment line are overwritten with spaces, so that
// every remaining byte keeps its original offset and line number. The
// comment lines themselves are returned in input order, without their
// line breaks. data is never modified; the copy is made lazily, so
// comment-free inputs are scanned in place.
func blankComments(data []byte) ([]byte, []string) {
	var (
		clean    []byte
		comments []string
	)
	blank := func(start, end int) {
		if clean == nil {
			clean = bytes.Clone(data)
		}
		for i := start; i < end; i++ {
			clean[i] = ' '
		}
	}

	if bytes.HasPrefix(data, utf8Bom) {
		blank(0, len(utf8Bom))
	}

	for start := 0; start < len(data); {
		end := bytes.IndexByte(data[start:], '\n')
		if end < 0 {
			end = len(data)
		} else {
			end += start
		}
		line := data[start:end]
		if isCommentLine(line) {
			line = bytes.TrimPrefix(line, utf8Bom)
			comments = append(comments, string(bytes.TrimRight(line, "\r")))
			blank(start, end)
		}
		start = end + 1
	}

	if clean == nil {
		clean = data
	}
	return clean, comments
}

// isCommentLine reports whether the line's first non-whitespace
// characters are ";;".
func isCommentLine(line []byte) bool {
	trimmed := bytes.TrimPrefix(line, utf8Bom)
	trimmed = bytes.TrimLeft(trimmed, " \t\r\f\v")
	return bytes.HasPrefix(trimmed, []byte(";;"))
}
