// Package parser contains the logic for parsing Penn Treebank bracketed
// text into an AST: a forest of constituent trees plus the file-level
// comments.
//
// The entry points are Parse, which consumes an io.Reader, and ParseData,
// which works on bytes already in memory. Problems in the source are
// delivered through a *reporter.Handler, so callers decide whether the
// first error aborts or all of them are collected. Parsing is all or
// nothing: a forest is returned only when the entire input is well
// formed, never a partial one.
//
// The Lexer is exported for tools that want the raw token stream, such
// as syntax highlighters; most callers never use it directly.
package parser
