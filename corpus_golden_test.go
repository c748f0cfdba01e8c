package treebank_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/treebankio/treebank/ast"
	"github.com/treebankio/treebank/freqt"
	"github.com/treebankio/treebank/internal/corpora"
	"github.com/treebankio/treebank/parser"
	"github.com/treebankio/treebank/printer"
	"github.com/treebankio/treebank/reporter"
)

// TestCorpus runs every sample under testdata/corpus through each of the
// writers and compares the results with checked-in goldens. To
// regenerate the goldens after an intended output change, run
//
//	TREEBANK_REFRESH='**' go test .
//
// review the diffs, and commit.
func TestCorpus(t *testing.T) {
	t.Parallel()
	corpora.Corpus{
		Root:      "testdata/corpus",
		Refresh:   "TREEBANK_REFRESH",
		Extension: "ptb",
		Outputs: []corpora.Output{
			{Extension: "compact"},
			{Extension: "pretty"},
			{Extension: "freqt"},
			{Extension: "text"},
			{Extension: "stripped"},
		},
		Test: func(t *testing.T, path, text string) []string {
			forest, err := parser.ParseData(path, []byte(text), reporter.NewHandler(nil))
			require.NoError(t, err)

			compact, err := printer.Print(forest, printer.Options{})
			require.NoError(t, err)
			pretty, err := printer.Print(forest, printer.Options{Indent: 2})
			require.NoError(t, err)
			mined, err := freqt.Print(forest, freqt.Options{IncludePOS: true})
			require.NoError(t, err)
			stripped, err := printer.Print(ast.StripTraces(forest), printer.Options{Indent: 2})
			require.NoError(t, err)

			// The writers do not newline-terminate; the golden files do.
			return []string{
				compact + "\n",
				pretty + "\n",
				mined + "\n",
				forest.Text() + "\n",
				stripped + "\n",
			}
		},
	}.Run(t)
}
