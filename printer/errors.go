package printer

import "errors"

// ErrInvalidAtom indicates a label or word that cannot be written in
// bracketed form: it is empty or contains whitespace or a parenthesis.
// Parsed forests never trip this; it signals a malformed hand-built node.
var ErrInvalidAtom = errors.New("invalid atom content")

// ErrInvalidNode indicates a node violating the children-XOR-word
// invariant: both a word and children, or neither.
var ErrInvalidNode = errors.New("invalid node")

// ErrInvalidComment indicates a forest comment line that would not
// survive a re-parse: it is missing the ";;" prefix or contains a line
// break.
var ErrInvalidComment = errors.New("invalid comment line")
