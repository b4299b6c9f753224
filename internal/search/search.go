// Package search implements the line filter at the core of minigrep.
//
// Results are substrings of the content passed in, so no line text is copied;
// the returned slices stay valid for as long as the caller keeps the content.
package search

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// CaseMode selects how a query is compared against each line.
type CaseMode int

const (
	CaseSensitive CaseMode = iota
	CaseInsensitive
)

func (m CaseMode) String() string {
	switch m {
	case CaseInsensitive:
		return "insensitive"
	default:
		return "sensitive"
	}
}

// ParseCaseMode accepts "sensitive" or "insensitive" (and a few short forms).
func ParseCaseMode(v string) (CaseMode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "sensitive", "case-sensitive", "exact":
		return CaseSensitive, nil
	case "insensitive", "case-insensitive", "ignore-case", "i":
		return CaseInsensitive, nil
	default:
		return CaseSensitive, fmt.Errorf("unknown case mode: %s", v)
	}
}

// ModeFor maps a case-sensitivity flag onto a CaseMode.
func ModeFor(caseSensitive bool) CaseMode {
	if caseSensitive {
		return CaseSensitive
	}
	return CaseInsensitive
}

// Filter returns, in original order, every line of content that contains
// query under the given mode. An empty query matches every line.
func Filter(query, content string, mode CaseMode) []string {
	if mode == CaseInsensitive {
		return SearchCaseInsensitive(query, content)
	}
	return Search(query, content)
}

// Search is the case-sensitive filter: a byte-literal substring test.
func Search(query, content string) []string {
	var out []string
	for _, line := range Lines(content) {
		if strings.Contains(line, query) {
			out = append(out, line)
		}
	}
	return out
}

// SearchCaseInsensitive folds the query and each line independently with
// Unicode case folding before testing containment. Folded copies are only
// used for the comparison; returned lines keep their original casing.
func SearchCaseInsensitive(query, content string) []string {
	fold := cases.Fold()
	needle := fold.String(query)
	var out []string
	for _, line := range Lines(content) {
		if strings.Contains(fold.String(line), needle) {
			out = append(out, line)
		}
	}
	return out
}

// Lines splits content on '\n' and drops one '\r' before each '\n', so CRLF
// and LF files yield the same lines. A trailing newline ends the last line
// rather than opening an empty one, and empty content has no lines. A bare
// '\r' at the end of an unterminated last line is kept.
func Lines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	last := len(lines) - 1
	for i := 0; i < last; i++ {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	if lines[last] == "" {
		lines = lines[:last]
	}
	return lines
}
