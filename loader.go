package treebank

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/treebankio/treebank/ast"
	"github.com/treebankio/treebank/parser"
	"github.com/treebankio/treebank/reporter"
)

// Loader reads and parses treebank files, turning file names into
// forests. Files are loaded concurrently, each one independently of the
// others, and the first failure aborts the work that remains.
type Loader struct {
	// Resolves file names into treebank source text or already-built
	// forests. This is how the loader finds the files to be loaded. This
	// field is the only required field.
	Resolver Resolver
	// The maximum parallelism to use when loading. If unspecified or set
	// to a non-positive value, then min(runtime.NumCPU(),
	// runtime.GOMAXPROCS(-1)) will be used.
	MaxParallelism int
	// A custom error and warning reporter. If unspecified a default
	// reporter is used. A default reporter fails the load after
	// encountering any error and ignores all warnings.
	Reporter reporter.Reporter
	// Options applied to the parse of every file, such as the
	// constituent nesting limit.
	Options parser.Options
}

// Load parses the given file names into forests. The loader's resolver
// is used to locate source text (or forests built elsewhere) for each
// name.
//
// Results are in the same order as the names. A name that appears more
// than once is resolved and parsed only once, and the same forest
// pointer fills each of its slots. On failure Load returns the first
// error in argument order, not the first in time; forests that loaded
// before the failure are discarded.
func (l *Loader) Load(ctx context.Context, filenames ...string) ([]*ast.Forest, error) {
	if len(filenames) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	par := l.MaxParallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(-1)
		cpus := runtime.NumCPU()
		if par > cpus {
			par = cpus
		}
	}

	e := executor{
		l:       l,
		h:       reporter.NewHandler(l.Reporter),
		s:       semaphore.NewWeighted(int64(par)),
		results: map[string]*result{},
	}

	results := make([]*result, len(filenames))
	for i, name := range filenames {
		results[i] = e.load(ctx, name)
	}

	forests := make([]*ast.Forest, len(filenames))
	for i, r := range results {
		select {
		case <-r.ready:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		if r.err != nil {
			return nil, r.err
		}
		forests[i] = r.forest
	}

	return forests, nil
}

type result struct {
	ready  chan struct{}
	forest *ast.Forest
	err    error
}

func (r *result) fail(err error) {
	r.err = err
	close(r.ready)
}

func (r *result) complete(f *ast.Forest) {
	r.forest = f
	close(r.ready)
}

// executor runs the loading tasks for one Load call. Its semaphore
// limits the number of concurrently running tasks; its handler is shared
// by all of them, so an abort in one file stops the others from
// reporting more.
type executor struct {
	l *Loader
	h *reporter.Handler
	s *semaphore.Weighted

	mu      sync.Mutex
	results map[string]*result
}

// load returns the result slot for the named file, starting a task the
// first time each name is requested. Duplicate names share a slot.
func (e *executor) load(ctx context.Context, filename string) *result {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := e.results[filename]
	if r != nil {
		return r
	}

	r = &result{
		ready: make(chan struct{}),
	}
	e.results[filename] = r
	go func() {
		e.doLoad(ctx, filename, r)
	}()
	return r
}

func (e *executor) doLoad(ctx context.Context, filename string, r *result) {
	if err := e.s.Acquire(ctx, 1); err != nil {
		r.fail(err)
		return
	}
	defer e.s.Release(1)

	sr, err := e.l.Resolver.FindFileByPath(filename)
	if err != nil {
		r.fail(err)
		return
	}

	defer func() {
		if sr.Source == nil {
			return
		}
		if c, ok := sr.Source.(io.Closer); ok {
			_ = c.Close()
		}
	}()

	forest, err := e.asForest(filename, sr)
	if err != nil {
		r.fail(err)
		return
	}
	r.complete(forest)
}

func (e *executor) asForest(filename string, sr SearchResult) (*ast.Forest, error) {
	if sr.Forest != nil {
		info := sr.Forest.File()
		if info == nil {
			return nil, fmt.Errorf("search result for %q returned forest with no source file information", filename)
		}
		if info.Name() != filename {
			return nil, fmt.Errorf("search result for %q returned forest parsed from %q", filename, info.Name())
		}
		return sr.Forest, nil
	}
	if sr.Source == nil {
		return nil, fmt.Errorf("search result for %q contained neither source nor forest", filename)
	}
	return parser.ParseWithOptions(filename, sr.Source, e.h, e.l.Options)
}
