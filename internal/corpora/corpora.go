// Package corpora runs golden-file test corpora: directories of input
// files whose expected outputs live alongside them as sibling files.
// This is essentially table-driven testing where the table is the file
// system, plus a refresh mode that rewrites the expected outputs from
// the current results.
package corpora

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes one golden-file test corpus.
type Corpus struct {
	// The root of the corpus directory. This path is relative to the
	// file that calls [Corpus.Run].
	Root string

	// An environment variable that switches Run into refresh mode. Its
	// value is a glob matched against case names; matching cases have
	// their expected outputs rewritten instead of compared.
	Refresh string

	// The file extension (without a dot) of files which define a test
	// case, e.g. "ptb".
	Extension string

	// Possible outputs of the test, found using Outputs[n].Extension.
	// If the file for a particular output is missing, it is implicitly
	// treated as being expected to be empty.
	Outputs []Output

	// Test executes one case from the corpus and returns its outputs,
	// element for element matching Outputs. The path is relative to the
	// corpus root and slash-separated.
	Test func(t *testing.T, path, text string) []string
}

// Output represents one comparable output of a test case.
type Output struct {
	// The extension of the output. This is a suffix to the name of the
	// case's main file: for a case "demo.ptb", an output with extension
	// "pretty" is compared against "demo.ptb.pretty".
	Extension string

	// The comparison function for this output. May be nil, in which
	// case the values are compared byte-for-byte and mismatches are
	// shown as colorized unified diffs.
	Compare Compare
}

// Compare is a comparison function between strings, used in [Output].
//
// Returns the empty string if the strings match, otherwise an error
// message.
type Compare func(got, want string) string

// Run discovers and executes every case under the corpus root as a
// subtest named by the case's root-relative path.
func (c Corpus) Run(t *testing.T) {
	root := filepath.Join(callerDir(0), c.Root)

	cases, err := doublestar.Glob(os.DirFS(root), "**/*."+c.Extension)
	if err != nil {
		t.Fatalf("corpora: bad case glob for extension %q: %v", c.Extension, err)
	}
	if len(cases) == 0 {
		t.Fatalf("corpora: no *.%s cases under %q", c.Extension, root)
	}

	// Check if a refresh has been requested.
	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: %s=%q is not a valid glob", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		// A refreshed run must not pass: review the new goldens, commit
		// them, and run again without the variable.
		t.Errorf("corpora: refreshing expected outputs because %s=%q", c.Refresh, refresh)
	}

	for _, name := range cases {
		t.Run(name, func(t *testing.T) {
			casePath := filepath.Join(root, filepath.FromSlash(name))
			text, err := os.ReadFile(casePath)
			if err != nil {
				t.Fatalf("corpora: error while loading input file %q: %v", casePath, err)
			}

			results := c.Test(t, name, string(text))
			if len(results) != len(c.Outputs) {
				t.Fatalf("corpora: test returned %d outputs, want %d", len(results), len(c.Outputs))
			}

			refreshing, _ := doublestar.Match(refresh, name)
			for i, output := range c.Outputs {
				outPath := casePath + "." + output.Extension
				if refreshing {
					refreshOutput(t, outPath, results[i])
					continue
				}

				want, err := os.ReadFile(outPath)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("corpora: error while loading output file %q: %v", outPath, err)
					continue
				}

				compare := output.Compare
				if compare == nil {
					compare = defaultCompare
				}
				if msg := compare(results[i], string(want)); msg != "" {
					t.Errorf("corpora: output mismatch for %q:\n%s", outPath, msg)
				}
			}
		})
	}
}

// refreshOutput replaces the expected output on disk with the current
// result; empty results delete the file instead, matching how a missing
// file reads back as empty.
func refreshOutput(t *testing.T, path, content string) {
	if content == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			t.Errorf("corpora: error while deleting output file %q: %v", path, err)
		}
		return
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Errorf("corpora: error while writing output file %q: %v", path, err)
	}
}

func defaultCompare(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	// Colorize the diff so it's easier to read. We're looking for lines
	// that start with a - or a +.
	lines := strings.Split(diff, "\n")
	for i, s := range lines {
		switch {
		case strings.HasPrefix(s, "+"):
			lines[i] = "\033[1;92m" + s + "\033[0m"
		case strings.HasPrefix(s, "-"):
			lines[i] = "\033[1;91m" + s + "\033[0m"
		}
	}

	return strings.Join(lines, "\n")
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("corpora: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
