// Package reporter contains the types used for reporting errors and
// warnings from parsing and loading treebank sources. Positioned
// diagnostics flow through a Reporter, letting the calling application
// decide whether to abort on the first problem or collect everything;
// the library itself never logs.
package reporter

import (
	"sync"

	"github.com/treebankio/treebank/ast"
)

// ErrorReporter is responsible for reporting the given error. If the
// reporter returns a non-nil error, the operation aborts with that error.
// If the reporter returns nil, the operation continues where it can
// (e.g. a loader moves on to its remaining files), though a single parse
// is always all-or-nothing.
type ErrorReporter func(err ErrorWithPos) error

// WarningReporter is responsible for reporting the given warning. This is
// used for indicating non-error messages to the calling program for
// things that do not cause the parse to fail but are worth surfacing,
// such as an input that contains no trees at all. Though they are just
// warnings, the details are supplied to the reporter via an error type.
type WarningReporter func(ErrorWithPos)

type Reporter interface {
	Error(ErrorWithPos) error
	Warning(ErrorWithPos)
}

func NewReporter(errs ErrorReporter, warnings WarningReporter) Reporter {
	return reporterFuncs{errs: errs, warnings: warnings}
}

type reporterFuncs struct {
	errs     ErrorReporter
	warnings WarningReporter
}

func (r reporterFuncs) Error(err ErrorWithPos) error {
	if r.errs == nil {
		return err
	}
	return r.errs(err)
}

func (r reporterFuncs) Warning(err ErrorWithPos) {
	if r.warnings != nil {
		r.warnings(err)
	}
}

// Handler wraps a Reporter with the bookkeeping parse and load
// operations need: it remembers whether errors were reported and which
// error aborted the work. A single Handler may be shared by concurrent
// loader workers; all methods are safe for concurrent use.
type Handler struct {
	reporter Reporter

	mu           sync.Mutex
	errsReported bool
	err          error
}

// NewHandler creates a new Handler. A nil reporter aborts on the first
// error and discards warnings.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil, nil)
	}
	return &Handler{reporter: rep}
}

// HandleErrorf reports an error at the given position, created with
// fmt.Errorf. It returns the error the operation should abort with, or
// nil when the reporter swallowed the diagnostic.
func (h *Handler) HandleErrorf(pos ast.SourcePos, format string, args ...any) error {
	return h.HandleErrorWithPos(Errorf(pos, format, args...))
}

// HandleErrorWithPos reports an already-positioned error, with the same
// return convention as HandleErrorf.
func (h *Handler) HandleErrorWithPos(err ErrorWithPos) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	h.errsReported = true
	h.err = h.reporter.Error(err)
	return h.err
}

// HandleError reports the given error. Errors implementing ErrorWithPos
// go through the reporter; anything else (an I/O failure, say) aborts
// unconditionally.
func (h *Handler) HandleError(err error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	if ewp, ok := err.(ErrorWithPos); ok {
		h.errsReported = true
		err = h.reporter.Error(ewp)
	}
	h.err = err
	return err
}

// HandleWarning reports a non-fatal diagnostic at the given position.
func (h *Handler) HandleWarning(pos ast.SourcePos, err error) {
	// no need for lock; warnings don't interact with mutable fields
	h.reporter.Warning(errorWithSourcePos{pos: pos, underlying: err})
}

// Error returns the error the handled operation failed with: the abort
// error if there was one, ErrInvalidSource if errors were reported but
// all swallowed, and nil if no errors were reported at all.
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported && h.err == nil {
		return ErrInvalidSource
	}
	return h.err
}

// ReporterError returns the error the reporter chose to abort with, if
// any. Unlike Error it stays nil when every diagnostic was swallowed.
func (h *Handler) ReporterError() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.err
}
