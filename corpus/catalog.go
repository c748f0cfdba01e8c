package corpus

import (
	"fmt"
	"os"
	"path"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// CatalogFile is the file name Open looks for under a corpus root.
const CatalogFile = "corpus.yaml"

// DefaultPattern matches the file extensions released treebanks ship
// with: .mrg for the Penn Treebank's merged (POS plus syntax) files and
// .ptb for plain bracketed files.
const DefaultPattern = "**/*.{mrg,ptb}"

// Document is a single annotated file within a corpus.
type Document struct {
	// ID is the name the document is requested by, slash-separated on
	// every platform, e.g. "wsj/wsj_0001". Defaults to Path minus its
	// extension.
	ID string `yaml:"id"`
	// Path locates the document's file relative to the corpus root.
	Path string `yaml:"path"`
}

// Catalog describes the contents of a corpus: its documents plus the
// provenance metadata annotated corpora are distributed with.
type Catalog struct {
	Name    string `yaml:"name"`
	License string `yaml:"license"`
	// Pattern is the glob used to discover documents when none are
	// listed. Empty means DefaultPattern.
	Pattern   string     `yaml:"pattern"`
	Documents []Document `yaml:"documents"`
}

// LoadCatalog reads a catalog from a YAML file. Document IDs default to
// the document path minus its extension; IDs must be unique.
func LoadCatalog(filename string) (*Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	seen := map[string]bool{}
	for i := range catalog.Documents {
		doc := &catalog.Documents[i]
		if doc.Path == "" {
			return nil, fmt.Errorf("%s: document %d: missing path", filename, i)
		}
		if doc.ID == "" {
			doc.ID = docID(doc.Path)
		}
		if seen[doc.ID] {
			return nil, fmt.Errorf("%s: duplicate document ID %q", filename, doc.ID)
		}
		seen[doc.ID] = true
	}
	return &catalog, nil
}

// Discover builds a catalog by globbing for document files under root.
// An empty pattern means DefaultPattern. Documents are in lexical path
// order with IDs derived from their paths.
func Discover(root, pattern string) (*Catalog, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	matches, err := doublestar.Glob(os.DirFS(root), pattern)
	if err != nil {
		return nil, fmt.Errorf("discovering documents in %s: pattern %q: %w", root, pattern, err)
	}
	slices.Sort(matches)

	catalog := &Catalog{Pattern: pattern}
	seen := map[string]bool{}
	for _, match := range matches {
		id := docID(match)
		if seen[id] {
			return nil, fmt.Errorf("discovering documents in %s: %q and another file share the ID %q", root, match, id)
		}
		seen[id] = true
		catalog.Documents = append(catalog.Documents, Document{ID: id, Path: match})
	}
	return catalog, nil
}

// DocumentIDs returns the IDs of every document, in catalog order.
func (c *Catalog) DocumentIDs() []string {
	ids := make([]string, len(c.Documents))
	for i, doc := range c.Documents {
		ids[i] = doc.ID
	}
	return ids
}

// Document returns the document with the given ID.
func (c *Catalog) Document(id string) (Document, bool) {
	for _, doc := range c.Documents {
		if doc.ID == id {
			return doc, true
		}
	}
	return Document{}, false
}

// docID derives a document ID from a slash-separated path by dropping
// the extension: "wsj/wsj_0001.mrg" becomes "wsj/wsj_0001".
func docID(p string) string {
	ext := path.Ext(p)
	return p[:len(p)-len(ext)]
}
