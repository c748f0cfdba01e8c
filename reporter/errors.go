package reporter

import (
	"errors"
	"fmt"

	"github.com/treebankio/treebank/ast"
)

// ErrInvalidSource is a sentinel error returned by parse and load
// operations when errors were encountered but the configured
// ErrorReporter always returned nil (i.e. chose to collect diagnostics
// rather than abort). It signals that no forest could be produced.
var ErrInvalidSource = errors.New("parse failed: invalid treebank source")

// ErrorWithPos is an error about a treebank source text that includes
// information about the location in the text that caused the error.
//
// The value of Error() will contain both the SourcePos and the underlying
// error. The value of Unwrap() will only be the underlying error.
type ErrorWithPos interface {
	error
	GetPosition() ast.SourcePos
	Unwrap() error
}

// Error creates a new ErrorWithPos from the given position and error.
func Error(pos ast.SourcePos, err error) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: err}
}

// Errorf creates a new ErrorWithPos at the given position whose
// underlying error is created with fmt.Errorf.
func Errorf(pos ast.SourcePos, format string, args ...any) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

// errorWithSourcePos is the canonical ErrorWithPos implementation.
// Calling code examining errors for location info should look for the
// ErrorWithPos interface rather than this type.
type errorWithSourcePos struct {
	underlying error
	pos        ast.SourcePos
}

func (e errorWithSourcePos) Error() string {
	return fmt.Sprintf("%s: %v", e.pos, e.underlying)
}

// GetPosition implements the ErrorWithPos interface, supplying the
// location in the source text that caused the error.
func (e errorWithSourcePos) GetPosition() ast.SourcePos {
	return e.pos
}

// Unwrap implements the ErrorWithPos interface, supplying the underlying
// error. This error will not include location information.
func (e errorWithSourcePos) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithSourcePos{}
