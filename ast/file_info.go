package ast

import (
	"bytes"
	"fmt"
	"sort"
	"unicode/utf8"
)

// Width of a tab stop when computing columns. Treebank corpora
// occasionally indent with tabs; columns advance to the next stop.
const tabstop = 8

// FileInfo contains information about the contents of one source text:
// its name, the raw bytes, and the offset at which each line begins.
// A lexer accumulates the line offsets as it scans the contents, which
// allows byte offsets to be resolved to line/column positions later.
type FileInfo struct {
	// The name of the source file.
	name string
	// The raw contents of the source file.
	data []byte
	// The offsets for each line in the file. The value is the zero-based
	// byte offset for a given line. The line is given by its index, so the
	// value at index 0 is the offset for the first line (which is always
	// zero), the value at index 1 is the offset at which the second line
	// begins, etc.
	lines []int
}

// NewFileInfo creates a new instance for the given file contents.
func NewFileInfo(filename string, contents []byte) *FileInfo {
	return &FileInfo{
		name:  filename,
		data:  contents,
		lines: []int{0},
	}
}

// Name returns the name of the source file.
func (f *FileInfo) Name() string {
	return f.name
}

// AddLine adds the offset representing the beginning of the "next" line in
// the file. The first line always starts at offset 0, the second line starts
// at offset-of-newline-char+1.
func (f *FileInfo) AddLine(offset int) {
	if offset < 0 {
		panic(fmt.Sprintf("invalid offset: %d must not be negative", offset))
	}
	if offset > len(f.data) {
		panic(fmt.Sprintf("invalid offset: %d is greater than file size %d", offset, len(f.data)))
	}

	if len(f.lines) > 0 {
		lastOffset := f.lines[len(f.lines)-1]
		if offset <= lastOffset {
			panic(fmt.Sprintf("invalid offset: %d is not greater than previously observed line offset %d", offset, lastOffset))
		}
	}

	f.lines = append(f.lines, offset)
}

// SourcePos resolves a byte offset in the file to a line/column position.
// Columns are 1-indexed and count runes, with tabs advancing to the next
// tab stop.
func (f *FileInfo) SourcePos(offset int) SourcePos {
	lineNumber := sort.Search(len(f.lines), func(n int) bool {
		return f.lines[n] > offset
	})

	col := 0
	for i := f.lines[lineNumber-1]; i < offset; {
		r, sz := utf8.DecodeRune(f.data[i:])
		if r == '\t' {
			col += tabstop - (col % tabstop)
		} else {
			col++
		}
		i += sz
	}

	return SourcePos{
		Filename: f.name,
		Offset:   offset,
		Line:     lineNumber,
		// Columns are 1-indexed.
		Col: col + 1,
	}
}

// LineOffset returns the byte offset at which the given 1-indexed line
// begins, or -1 when n is out of range.
func (f *FileInfo) LineOffset(n int) int {
	if n < 1 || n > len(f.lines) {
		return -1
	}
	return f.lines[n-1]
}

// Line returns the text of the given 1-indexed line, without its trailing
// line break. It returns the empty string when n is out of range.
func (f *FileInfo) Line(n int) string {
	if n < 1 || n > len(f.lines) {
		return ""
	}
	start := f.lines[n-1]
	end := len(f.data)
	if n < len(f.lines) {
		end = f.lines[n]
	}
	return string(bytes.TrimRight(f.data[start:end], "\r\n"))
}

// SourcePos identifies a location in a source file.
type SourcePos struct {
	Filename  string
	Line, Col int
	Offset    int
}

func (pos SourcePos) String() string {
	if pos.Line <= 0 || pos.Col <= 0 {
		return pos.Filename
	}
	return fmt.Sprintf("%s:%d:%d", pos.Filename, pos.Line, pos.Col)
}

// UnknownPos is a placeholder position when only the source file
// name is known.
func UnknownPos(filename string) SourcePos {
	return SourcePos{Filename: filename}
}
