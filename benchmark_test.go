package treebank_test

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/treebankio/treebank"
	"github.com/treebankio/treebank/ast"
	"github.com/treebankio/treebank/freqt"
	"github.com/treebankio/treebank/parser"
	"github.com/treebankio/treebank/printer"
	"github.com/treebankio/treebank/reporter"
)

// benchCorpus synthesizes an in-memory corpus of numFiles documents with
// treesPerFile sentences each. The words vary per sentence so the parser
// sees realistic input instead of one repeated line.
func benchCorpus(numFiles, treesPerFile int) (map[string]string, []string) {
	sources := make(map[string]string, numFiles)
	names := make([]string, numFiles)
	for i := range names {
		name := fmt.Sprintf("bench/doc%03d.ptb", i)
		names[i] = name
		var sb strings.Builder
		sb.WriteString(";; Source: synthesized benchmark corpus\n")
		for j := 0; j < treesPerFile; j++ {
			fmt.Fprintf(&sb, "(S (NP-SBJ (DT the) (NN item%d)) (VP (VBZ modifies) (NP (DT a) (NN value%d))) (. .))\n", j, i+j)
		}
		sources[name] = sb.String()
	}
	return sources, names
}

func benchForest(b *testing.B) *ast.Forest {
	sources, names := benchCorpus(1, 2000)
	forest, err := parser.ParseData(names[0], []byte(sources[names[0]]), reporter.NewHandler(nil))
	require.NoError(b, err)
	return forest
}

func BenchmarkParse(b *testing.B) {
	sources, names := benchCorpus(1, 2000)
	data := []byte(sources[names[0]])
	for i := 0; i < b.N; i++ {
		_, err := parser.ParseData(names[0], data, reporter.NewHandler(nil))
		require.NoError(b, err)
	}
}

func BenchmarkLoad(b *testing.B) {
	sources, names := benchCorpus(64, 100)
	benchmarkLoad(b, names, func() *treebank.Loader {
		return &treebank.Loader{
			Resolver: &treebank.SourceResolver{
				Accessor: treebank.SourceAccessorFromMap(sources),
			},
			// leave MaxParallelism unset to let it use all cores available
		}
	})
}

func BenchmarkLoadSingleThreaded(b *testing.B) {
	sources, names := benchCorpus(64, 100)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			loader := &treebank.Loader{
				Resolver: &treebank.SourceResolver{
					Accessor: treebank.SourceAccessorFromMap(sources),
				},
				// to measure the per-file cost without scheduling wins,
				// run a single-threaded load
				MaxParallelism: 1,
			}
			forests, err := loader.Load(context.Background(), names...)
			require.NoError(b, err)
			require.Len(b, forests, len(names))
		}
	})
}

func benchmarkLoad(b *testing.B, names []string, factory func() *treebank.Loader) {
	for i := 0; i < b.N; i++ {
		forests, err := factory().Load(context.Background(), names...)
		require.NoError(b, err)
		require.Len(b, forests, len(names))
	}
}

func BenchmarkPrintCompact(b *testing.B) {
	benchmarkPrint(b, printer.Options{})
}

func BenchmarkPrintPretty(b *testing.B) {
	benchmarkPrint(b, printer.Options{Indent: 2})
}

func benchmarkPrint(b *testing.B, opts printer.Options) {
	forest := benchForest(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		err := printer.Fprint(io.Discard, forest, opts)
		require.NoError(b, err)
	}
}

func BenchmarkFreqtPrint(b *testing.B) {
	forest := benchForest(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		err := freqt.Fprint(io.Discard, forest, freqt.Options{IncludePOS: true})
		require.NoError(b, err)
	}
}
