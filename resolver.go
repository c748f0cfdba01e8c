package treebank

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/treebankio/treebank/ast"
)

// ErrNotFound is returned by a Resolver when it does not know how to
// locate the named file. CompositeResolver treats it as a signal to try
// the next resolver in the list; any other error stops the search.
var ErrNotFound = errors.New("file not found")

// Resolver locates treebank files by name, producing either their source
// text or an already-built forest. This is how a Loader finds the files
// it is asked to load.
type Resolver interface {
	FindFileByPath(path string) (SearchResult, error)
}

// SearchResult is how a Resolver answers a query for a file. Only one
// field should be set; if both are, the loader prefers the forest and
// ignores the source.
type SearchResult struct {
	// Source is the raw treebank text, to be parsed by the loader. If it
	// implements io.Closer, the loader closes it when done.
	Source io.Reader
	// Forest is an already-built forest, used as-is. Its file name must
	// match the queried path.
	Forest *ast.Forest
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(string) (SearchResult, error)

var _ Resolver = ResolverFunc(nil)

func (f ResolverFunc) FindFileByPath(path string) (SearchResult, error) {
	return f(path)
}

// CompositeResolver queries each resolver in order and returns the first
// answer. A resolver that fails with ErrNotFound is skipped; any other
// failure is returned immediately.
type CompositeResolver []Resolver

var _ Resolver = CompositeResolver(nil)

func (f CompositeResolver) FindFileByPath(path string) (SearchResult, error) {
	for _, res := range f {
		r, err := res.FindFileByPath(path)
		if err == nil {
			return r, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return SearchResult{}, err
		}
	}
	return SearchResult{}, fmt.Errorf("%s: %w", path, ErrNotFound)
}

// SourceResolver resolves file names against the file system. It is the
// only resolver in this module that touches the file system; everything
// else works from readers and in-memory forests.
type SourceResolver struct {
	// Directories in which to search for the named file. The first
	// directory containing it wins. If empty, the name is opened as
	// given, relative to the current working directory.
	SearchPaths []string
	// Accessor opens a candidate path. If nil, os.Open is used. Tests
	// use this to serve sources from memory.
	Accessor func(path string) (io.ReadCloser, error)
}

var _ Resolver = (*SourceResolver)(nil)

func (r *SourceResolver) FindFileByPath(path string) (SearchResult, error) {
	accessor := r.Accessor
	if accessor == nil {
		accessor = func(name string) (io.ReadCloser, error) {
			return os.Open(name)
		}
	}

	if len(r.SearchPaths) == 0 {
		reader, err := accessor(path)
		if err != nil {
			if os.IsNotExist(err) {
				return SearchResult{}, fmt.Errorf("%s: %w", path, ErrNotFound)
			}
			return SearchResult{}, err
		}
		return SearchResult{Source: reader}, nil
	}

	for _, searchPath := range r.SearchPaths {
		reader, err := accessor(filepath.Join(searchPath, path))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return SearchResult{}, err
		}
		return SearchResult{Source: reader}, nil
	}
	return SearchResult{}, fmt.Errorf("%s: %w", path, ErrNotFound)
}

// SourceAccessorFromMap returns an accessor for SourceResolver that
// serves source text from the given map instead of the file system,
// keyed by the exact path. Paths not in the map report os.ErrNotExist,
// so a resolver backed by the map composes with CompositeResolver the
// same way a file-system resolver does.
func SourceAccessorFromMap(srcs map[string]string) func(string) (io.ReadCloser, error) {
	return func(path string) (io.ReadCloser, error) {
		src, ok := srcs[path]
		if !ok {
			return nil, os.ErrNotExist
		}
		return io.NopCloser(strings.NewReader(src)), nil
	}
}
