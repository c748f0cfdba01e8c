// Package treebank provides the entry point for a toolkit that reads,
// inspects, and writes Penn Treebank bracketed parse trees in pure Go.
// "Reads" covers the whole pipeline: parsing annotated source into
// syntax forests, with precise source positions and error reporting
// along the way.
//
// The sub-packages hold the individual pieces, which this package ties
// together:
//  1. Parse bracketed source into a forest of trees.
//     Also see: parser.Parse
//  2. Walk and transform the trees.
//     Also see: walk.Nodes, ast.Node
//  3. Resolve byte offsets back to constituents.
//     Also see: spans.New
//  4. Render forests back to bracketed text, or to the one-line
//     format used by tree mining tools.
//     Also see: printer.Print, freqt.Print
//
// Corpora laid out as directories of files are handled one level up, by
// the corpus package, which builds on the Loader defined here.
//
// # Resolvers
//
// A Resolver is how the loader locates the files it is asked to load.
// It can answer a query with source text, which the loader parses, or
// with a forest that was already built (parsed earlier, or synthesized
// in memory), which the loader uses as-is.
//
// SourceResolver reads files from disk and is the only part of the
// module that touches the file system. ResolverFunc adapts a function,
// and CompositeResolver chains resolvers so that, say, a handful of
// in-memory fixtures can shadow a directory of real files.
//
// # Loader
//
// A Loader accepts a list of file names and produces a forest per name,
// loading files concurrently. Only its Resolver field is required. A
// minimal Loader that reads files relative to the current working
// directory:
//
//	loader := treebank.Loader{
//		Resolver: &treebank.SourceResolver{},
//	}
//
// This minimal Loader uses default parallelism, equal to the number of
// CPU cores detected, and fails fast on the first syntax error. Both
// aspects can be customized by setting other fields: MaxParallelism
// bounds the fan-out, and a custom Reporter can collect every error in
// a file instead of stopping at the first, or turn warnings (such as a
// file containing no trees at all) into failures.
package treebank
