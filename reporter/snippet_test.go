package reporter_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/treebankio/treebank/ast"
	"github.com/treebankio/treebank/reporter"
)

func TestSnippet(t *testing.T) {
	t.Parallel()
	data := []byte("(ROOT (S (NP (NNP Chomsky))")
	info := ast.NewFileInfo("corpus.ptb", data)
	err := reporter.Error(info.SourcePos(len(data)), errors.New("unbalanced parentheses"))

	got := reporter.Snippet(info, err)
	want := "corpus.ptb:1:28: unbalanced parentheses\n" +
		" 1 | (ROOT (S (NP (NNP Chomsky))\n" +
		"   | " + strings.Repeat(" ", 27) + "^"
	assert.Equal(t, want, got)
}

func TestSnippetSecondLine(t *testing.T) {
	t.Parallel()
	data := []byte(";; Source: sample\n(ROOT (X y) z)\n")
	info := ast.NewFileInfo("corpus.ptb", data)
	info.AddLine(18)
	info.AddLine(33)

	// Error at the stray atom "z", offset 30.
	err := reporter.Error(info.SourcePos(30), errors.New("unexpected token after terminal"))
	got := reporter.Snippet(info, err)
	want := "corpus.ptb:2:13: unexpected token after terminal\n" +
		" 2 | (ROOT (X y) z)\n" +
		"   | " + strings.Repeat(" ", 12) + "^"
	assert.Equal(t, want, got)
}

func TestSnippetExpandsTabs(t *testing.T) {
	t.Parallel()
	data := []byte("\t(X y\n")
	info := ast.NewFileInfo("tabs.ptb", data)
	info.AddLine(6)

	err := reporter.Error(info.SourcePos(1), errors.New("unbalanced parentheses"))
	got := reporter.Snippet(info, err)
	want := "tabs.ptb:1:9: unbalanced parentheses\n" +
		" 1 | " + strings.Repeat(" ", 8) + "(X y\n" +
		"   | " + strings.Repeat(" ", 8) + "^"
	assert.Equal(t, want, got)
}

func TestSnippetWideRunes(t *testing.T) {
	t.Parallel()
	data := []byte("(ROOT (NP (NNP 乔姆斯基)))")
	info := ast.NewFileInfo("zh.ptb", data)

	// Position of the ')' right after the four-rune word: the word is
	// 12 bytes but renders 8 columns wide.
	offset := len("(ROOT (NP (NNP ") + len("乔姆斯基")
	err := reporter.Error(info.SourcePos(offset), errors.New("boom"))
	got := reporter.Snippet(info, err)
	want := "zh.ptb:1:20: boom\n" +
		" 1 | (ROOT (NP (NNP 乔姆斯基)))\n" +
		"   | " + strings.Repeat(" ", 23) + "^"
	assert.Equal(t, want, got)
}

func TestSnippetWithoutPosition(t *testing.T) {
	t.Parallel()
	err := reporter.Error(ast.UnknownPos("lost.ptb"), errors.New("boom"))
	assert.Equal(t, "lost.ptb: boom", reporter.Snippet(nil, err))

	info := ast.NewFileInfo("lost.ptb", []byte("(X y)"))
	assert.Equal(t, "lost.ptb: boom", reporter.Snippet(info, err))
}
