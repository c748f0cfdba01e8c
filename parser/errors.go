package parser

import "errors"

// ErrNoTrees is a sentinel error that may be passed to a warning reporter.
// The error the reporter receives will be wrapped with a source position
// that indicates the file that contained no parse trees. Such a file is
// usually a truncated export or a path mix-up, but an empty forest is
// still a valid forest, so parsing succeeds.
var ErrNoTrees = errors.New("input contains no parse trees")
