package reporter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/treebankio/treebank/ast"
)

// Width all tabstops render at in snippets. Matches the column math of
// ast.FileInfo.SourcePos so the caret and the reported column agree.
const tabstopWidth = 8

// Snippet renders a positioned error with the offending source line and a
// caret marking the failing column:
//
//	corpus.ptb:2:14: unbalanced parentheses
//	 2 | (ROOT (S (NP (NNP Chomsky))
//	   |              ^
//
// Tabs are expanded and rune widths measured (wide CJK terminals count as
// two columns) so the caret stays aligned. When info is nil or the error
// carries no usable position, just the message line is returned.
func Snippet(info *ast.FileInfo, err ErrorWithPos) string {
	var sb strings.Builder
	sb.WriteString(err.Error())

	pos := err.GetPosition()
	if info == nil || pos.Line <= 0 {
		return sb.String()
	}
	lineStart := info.LineOffset(pos.Line)
	line := info.Line(pos.Line)
	if lineStart < 0 || pos.Offset < lineStart || pos.Offset-lineStart > len(line) {
		return sb.String()
	}

	lineNo := strconv.Itoa(pos.Line)
	gutter := strings.Repeat(" ", len(lineNo))
	caret := renderWidth(0, line[:pos.Offset-lineStart], nil)

	fmt.Fprintf(&sb, "\n %s | ", lineNo)
	renderWidth(0, line, &sb)
	fmt.Fprintf(&sb, "\n %s | %s^", gutter, strings.Repeat(" ", caret))
	return sb.String()
}

// renderWidth computes the rendered width of text if placed at the given
// column, accounting for tabstops. When out is non-nil the text is also
// written to it with tabs expanded to spaces, keeping the output
// independent of the terminal's own tab handling.
func renderWidth(column int, text string, out *strings.Builder) int {
	for text != "" {
		nextTab := strings.IndexByte(text, '\t')
		haveTab := nextTab != -1
		next := text
		if haveTab {
			next, text = text[:nextTab], text[nextTab+1:]
		} else {
			text = ""
		}

		column += uniseg.StringWidth(next)
		if out != nil {
			out.WriteString(next)
		}

		if haveTab {
			pad := tabstopWidth - (column % tabstopWidth)
			column += pad
			if out != nil {
				out.WriteString(strings.Repeat(" ", pad))
			}
		}
	}
	return column
}
