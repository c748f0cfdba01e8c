package parser

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treebankio/treebank/ast"
	"github.com/treebankio/treebank/reporter"
)

const chomskySrc = ";; Source: demo\n" +
	"(ROOT\n" +
	"  (S\n" +
	"    (NP (NNP Chomsky))\n" +
	"    (VP (VBZ is))))\n"

func TestParseData(t *testing.T) {
	t.Parallel()
	handler := reporter.NewHandler(nil)
	forest, err := ParseData("demo.ptb", []byte(chomskySrc), handler)
	require.NoError(t, err)
	require.NotNil(t, forest)

	want := []*ast.Node{{
		Label: "ROOT",
		Span:  ast.Span{Start: 16, End: 69},
		Children: []*ast.Node{{
			Label: "S",
			Span:  ast.Span{Start: 24, End: 68},
			Children: []*ast.Node{
				{
					Label: "NP",
					Span:  ast.Span{Start: 31, End: 49},
					Children: []*ast.Node{{
						Label: "NNP",
						Word:  "Chomsky",
						Span:  ast.Span{Start: 35, End: 48},
					}},
				},
				{
					Label: "VP",
					Span:  ast.Span{Start: 54, End: 67},
					Children: []*ast.Node{{
						Label: "VBZ",
						Word:  "is",
						Span:  ast.Span{Start: 58, End: 66},
					}},
				},
			},
		}},
	}}
	assert.Empty(t, cmp.Diff(want, forest.Trees))

	// Spans address the original text, parentheses included.
	leaf := forest.Trees[0].Children[0].Children[0].Children[0]
	assert.Equal(t, "(NNP Chomsky)", chomskySrc[leaf.Span.Start:leaf.Span.End])

	assert.Equal(t, []string{";; Source: demo"}, forest.Comments)
	source, ok := forest.Metadata("Source")
	assert.True(t, ok)
	assert.Equal(t, "demo", source)
	assert.Equal(t, "Chomsky is", forest.Text())
	require.NotNil(t, forest.File())
	assert.Equal(t, "demo.ptb", forest.File().Name())
}

func TestParseMultipleTrees(t *testing.T) {
	t.Parallel()
	input := "(S1 (X a))\n\n(S2 (X b))\n(S3 (X c))"
	handler := reporter.NewHandler(nil)
	forest, err := ParseData("multi.ptb", []byte(input), handler)
	require.NoError(t, err)
	require.Equal(t, 3, forest.Len())

	var labels []string
	for _, tree := range forest.Trees {
		labels = append(labels, tree.Label)
	}
	assert.Equal(t, []string{"S1", "S2", "S3"}, labels)
	assert.Equal(t, "a\nb\nc", forest.Text())
}

func TestParseTraces(t *testing.T) {
	t.Parallel()
	input := "(S (NP-SBJ (-NONE- *T*-1)) (VP (VB go)))"
	handler := reporter.NewHandler(nil)
	forest, err := ParseData("trace.ptb", []byte(input), handler)
	require.NoError(t, err)
	require.Equal(t, 1, forest.Len())

	trace := forest.Trees[0].Children[0].Children[0]
	assert.True(t, trace.IsTrace())
	assert.Equal(t, "*T*-1", trace.Word)
	assert.Equal(t, "*T*-1 go", forest.Text())
}

func TestParseEmptyInput(t *testing.T) {
	t.Parallel()
	var warnings []reporter.ErrorWithPos
	rep := reporter.NewReporter(nil, func(err reporter.ErrorWithPos) {
		warnings = append(warnings, err)
	})
	handler := reporter.NewHandler(rep)

	forest, err := ParseData("empty.ptb", []byte("  \n;; c\n"), handler)
	require.NoError(t, err)
	require.NotNil(t, forest)
	assert.Equal(t, 0, forest.Len())
	assert.Equal(t, []string{";; c"}, forest.Comments)

	require.Len(t, warnings, 1)
	assert.ErrorIs(t, warnings[0], ErrNoTrees)
	assert.Equal(t, 3, warnings[0].GetPosition().Line)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name   string
		input  string
		errMsg string
		line   int
		col    int
	}{
		{
			name:   "close paren at top level",
			input:  ")",
			errMsg: `expected "(" to start a tree, got ")"`,
			line:   1, col: 1,
		},
		{
			name:   "bare atom at top level",
			input:  "dog",
			errMsg: `expected "(" to start a tree, got "dog"`,
			line:   1, col: 1,
		},
		{
			name:   "missing label before child",
			input:  "((S x))",
			errMsg: `missing label: expected atom after "(", got "("`,
			line:   1, col: 2,
		},
		{
			name:   "missing label before close",
			input:  "()",
			errMsg: `missing label: expected atom after "(", got ")"`,
			line:   1, col: 2,
		},
		{
			name:   "empty constituent",
			input:  "(NP)",
			errMsg: "empty constituent",
			line:   1, col: 4,
		},
		{
			name:   "second word",
			input:  "(NP dog cat)",
			errMsg: `unexpected "cat" after terminal word`,
			line:   1, col: 9,
		},
		{
			name:   "child after word",
			input:  "(NP dog (X y))",
			errMsg: `unexpected "(" after terminal word`,
			line:   1, col: 9,
		},
		{
			name:   "word after children",
			input:  "(S (NP dog) word)",
			errMsg: `unexpected "word" after child constituents`,
			line:   1, col: 13,
		},
		{
			name:   "one unclosed paren",
			input:  "(S (NP dog)",
			errMsg: `unbalanced parentheses: 1 unclosed "("`,
			line:   1, col: 12,
		},
		{
			name:   "several unclosed parens",
			input:  "(S (NP (DT",
			errMsg: `unbalanced parentheses: 3 unclosed "("`,
			line:   1, col: 11,
		},
		{
			name:   "extra close paren",
			input:  "(S (NP dog)))",
			errMsg: `expected "(" to start a tree, got ")"`,
			line:   1, col: 13,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			handler := reporter.NewHandler(nil)
			forest, err := ParseData("test.ptb", []byte(tc.input), handler)
			assert.Nil(t, forest)
			require.Error(t, err)

			var ewp reporter.ErrorWithPos
			require.ErrorAs(t, err, &ewp)
			assert.Contains(t, ewp.Error(), tc.errMsg)
			pos := ewp.GetPosition()
			assert.Equal(t, tc.line, pos.Line, "line")
			assert.Equal(t, tc.col, pos.Col, "col")
		})
	}
}

func TestParseDepthLimit(t *testing.T) {
	t.Parallel()
	deep := func(depth int) []byte {
		return []byte(strings.Repeat("(A ", depth) + "w" + strings.Repeat(")", depth))
	}

	forest, err := ParseDataWithOptions("deep.ptb", deep(5), reporter.NewHandler(nil), Options{MaxDepth: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, forest.Len())

	_, err = ParseDataWithOptions("deep.ptb", deep(6), reporter.NewHandler(nil), Options{MaxDepth: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nesting depth exceeds limit of 5")
	var ewp reporter.ErrorWithPos
	require.ErrorAs(t, err, &ewp)
	assert.Equal(t, 16, ewp.GetPosition().Col)

	// Options{} applies the default limit.
	forest, err = ParseData("deep.ptb", deep(DefaultMaxDepth), reporter.NewHandler(nil))
	require.NoError(t, err)
	assert.Equal(t, 1, forest.Len())

	_, err = ParseData("deep.ptb", deep(DefaultMaxDepth+1), reporter.NewHandler(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nesting depth exceeds limit of 1000")
}

func TestParseCollectMode(t *testing.T) {
	t.Parallel()
	var errs []reporter.ErrorWithPos
	rep := reporter.NewReporter(func(err reporter.ErrorWithPos) error {
		errs = append(errs, err)
		return nil
	}, nil)
	handler := reporter.NewHandler(rep)

	forest, err := ParseData("bad.ptb", []byte("(NP)"), handler)
	assert.Nil(t, forest)
	require.ErrorIs(t, err, reporter.ErrInvalidSource)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "empty constituent")
}

func TestParseSharedHandler(t *testing.T) {
	t.Parallel()
	handler := reporter.NewHandler(nil)
	_, err := ParseData("bad.ptb", []byte(")"), handler)
	require.Error(t, err)

	// The handler already failed, so even pristine input is rejected.
	forest, err := ParseData("good.ptb", []byte("(X y)"), handler)
	assert.Nil(t, forest)
	assert.Error(t, err)
}

func TestParseReader(t *testing.T) {
	t.Parallel()
	forest, err := Parse("r.ptb", strings.NewReader("(X y)"), reporter.NewHandler(nil))
	require.NoError(t, err)
	assert.Equal(t, 1, forest.Len())

	boom := errors.New("disk trouble")
	_, err = Parse("r.ptb", iotest.ErrReader(boom), reporter.NewHandler(nil))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "r.ptb")
}
