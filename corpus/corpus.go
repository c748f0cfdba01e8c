// Package corpus works with treebank corpora laid out as directories of
// annotated files, the way the Penn Treebank and its relatives are
// distributed. A corpus is described by a catalog: either an explicit
// corpus.yaml at its root, or one discovered by globbing for annotated
// files. Documents are addressed by ID rather than file path, so code
// that consumes a corpus does not care how the distributor arranged the
// directories.
package corpus

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/treebankio/treebank"
	"github.com/treebankio/treebank/ast"
)

// Corpus is an opened corpus: a catalog of documents plus a loader bound
// to the corpus root.
type Corpus struct {
	// Loader parses the corpus's documents. Callers may adjust it before
	// loading, say to collect every syntax error instead of stopping at
	// the first, or to cap parallelism. Its resolver is bound to the
	// corpus root by Open and should be left alone.
	Loader treebank.Loader

	root    string
	catalog *Catalog
}

// Open opens the corpus rooted at the given directory. If a corpus.yaml
// is present it is read as the catalog; a catalog that lists no
// documents, or a root without a catalog, gets its documents discovered
// by glob (the catalog's pattern, or DefaultPattern).
func Open(root string) (*Corpus, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: not a directory", root)
	}

	catalog, err := LoadCatalog(filepath.Join(root, CatalogFile))
	if errors.Is(err, fs.ErrNotExist) {
		catalog = &Catalog{}
	} else if err != nil {
		return nil, err
	}
	if catalog.Name == "" {
		catalog.Name = filepath.Base(root)
	}
	if len(catalog.Documents) == 0 {
		discovered, err := Discover(root, catalog.Pattern)
		if err != nil {
			return nil, err
		}
		catalog.Documents = discovered.Documents
	}

	return &Corpus{
		Loader: treebank.Loader{
			Resolver: &treebank.SourceResolver{SearchPaths: []string{root}},
		},
		root:    root,
		catalog: catalog,
	}, nil
}

// Root returns the directory the corpus was opened from.
func (c *Corpus) Root() string {
	return c.root
}

// Catalog returns the corpus's catalog. Mutating it affects subsequent
// loads.
func (c *Corpus) Catalog() *Catalog {
	return c.catalog
}

// Load parses the documents with the given IDs and returns their
// forests in the same order. With no IDs it loads the whole corpus in
// catalog order. An ID not in the catalog fails with an error wrapping
// treebank.ErrNotFound before any parsing happens.
func (c *Corpus) Load(ctx context.Context, ids ...string) ([]*ast.Forest, error) {
	if len(ids) == 0 {
		ids = c.catalog.DocumentIDs()
	}
	paths := make([]string, len(ids))
	for i, id := range ids {
		doc, ok := c.catalog.Document(id)
		if !ok {
			return nil, fmt.Errorf("document %q: %w", id, treebank.ErrNotFound)
		}
		paths[i] = doc.Path
	}
	return c.Loader.Load(ctx, paths...)
}

// Forest loads a single document by ID.
func (c *Corpus) Forest(ctx context.Context, id string) (*ast.Forest, error) {
	forests, err := c.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return forests[0], nil
}
