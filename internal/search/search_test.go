package search

import (
	"strings"
	"testing"
)

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSearchCaseSensitive(t *testing.T) {
	query := "duct"
	contents := "Rust:\nsafe, fast, productive.\nPick three.\nDuct tape."

	got := Filter(query, contents, CaseSensitive)
	want := []string{"safe, fast, productive."}
	if !equalLines(got, want) {
		t.Fatalf("Filter(%q) = %q, want %q", query, got, want)
	}
	if direct := Search(query, contents); !equalLines(direct, want) {
		t.Fatalf("Search(%q) = %q, want %q", query, direct, want)
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	query := "rUsT"
	contents := "Rust:\nsafe, fast, productive.\nPick three.\nTrust me."

	got := Filter(query, contents, CaseInsensitive)
	want := []string{"Rust:", "Trust me."}
	if !equalLines(got, want) {
		t.Fatalf("Filter(%q) = %q, want %q", query, got, want)
	}
	if direct := SearchCaseInsensitive(query, contents); !equalLines(direct, want) {
		t.Fatalf("SearchCaseInsensitive(%q) = %q, want %q", query, direct, want)
	}
}

func TestFilterEdgeCases(t *testing.T) {
	cases := []struct {
		name    string
		query   string
		content string
		mode    CaseMode
		want    []string
	}{
		{name: "EmptyQuerySensitive", query: "", content: "a\nB\n\nc", mode: CaseSensitive, want: []string{"a", "B", "", "c"}},
		{name: "EmptyQueryInsensitive", query: "", content: "a\nB\n\nc", mode: CaseInsensitive, want: []string{"a", "B", "", "c"}},
		{name: "EmptyContentSensitive", query: "x", content: "", mode: CaseSensitive, want: nil},
		{name: "EmptyContentInsensitive", query: "x", content: "", mode: CaseInsensitive, want: nil},
		{name: "EmptyBoth", query: "", content: "", mode: CaseSensitive, want: nil},
		{name: "TrailingNewline", query: "", content: "one\ntwo\n", mode: CaseSensitive, want: []string{"one", "two"}},
		{name: "CarriageReturnStripped", query: "one", content: "one\r\ntwo\r\n", mode: CaseSensitive, want: []string{"one"}},
		{name: "CRLFInsensitive", query: "rust", content: "Rust:\r\nTrust me.\r\n", mode: CaseInsensitive, want: []string{"Rust:", "Trust me."}},
		{name: "CarriageReturnNotQueryable", query: "one\r", content: "one\r\ntwo", mode: CaseSensitive, want: nil},
		{name: "NoMatch", query: "zzz", content: "alpha\nbeta", mode: CaseInsensitive, want: nil},
		{name: "RepeatedLines", query: "x", content: "x\ny\nx", mode: CaseSensitive, want: []string{"x", "x"}},
		{name: "UnicodeFold", query: "STRASSE", content: "Straße 1\nGasse 2", mode: CaseInsensitive, want: []string{"Straße 1"}},
		{name: "GreekFold", query: "σ", content: "ΟΔΟΣ\nalpha", mode: CaseInsensitive, want: []string{"ΟΔΟΣ"}},
		{name: "SensitiveIgnoresFold", query: "STRASSE", content: "Straße 1", mode: CaseSensitive, want: nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(tc.query, tc.content, tc.mode)
			if !equalLines(got, tc.want) {
				t.Fatalf("Filter(%q, %q, %v) = %q, want %q", tc.query, tc.content, tc.mode, got, tc.want)
			}
		})
	}
}

var propertyInputs = []struct {
	query   string
	content string
}{
	{"the", "How public, like The Frog\nTo tell your name the livelong day"},
	{"o", "One\ntwo\nTHREE\nfour\n"},
	{"Go", "go\nGO\ngO\nGo\ngopher"},
	{"é", "café\nCAFÉ\ncafe"},
	{"line", "line 1\r\nLINE 2\r\nother\r\n"},
	{"", "a\n\n"},
	{"", "x\r\n\r\ny"},
}

func TestSensitiveResultIsSubsetOfInsensitive(t *testing.T) {
	for _, in := range propertyInputs {
		sensitive := positions(in.query, in.content, CaseSensitive)
		insensitive := make(map[int]bool)
		for _, p := range positions(in.query, in.content, CaseInsensitive) {
			insensitive[p] = true
		}
		for _, p := range sensitive {
			if !insensitive[p] {
				t.Fatalf("line %d matched sensitively but not insensitively for %q in %q", p, in.query, in.content)
			}
		}
	}
}

func TestFilterPreservesOrderAndCompleteness(t *testing.T) {
	for _, in := range propertyInputs {
		lines := Lines(in.content)
		got := positions(in.query, in.content, CaseSensitive)
		for i := 1; i < len(got); i++ {
			if got[i] <= got[i-1] {
				t.Fatalf("positions not strictly increasing: %v", got)
			}
		}
		matched := make(map[int]bool, len(got))
		for _, p := range got {
			matched[p] = true
			if !strings.Contains(lines[p], in.query) {
				t.Fatalf("line %q returned without containing %q", lines[p], in.query)
			}
		}
		for i, line := range lines {
			if !matched[i] && strings.Contains(line, in.query) {
				t.Fatalf("line %q omitted although it contains %q", line, in.query)
			}
		}
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	for _, mode := range []CaseMode{CaseSensitive, CaseInsensitive} {
		for _, in := range propertyInputs {
			first := Filter(in.query, in.content, mode)
			second := Filter(in.query, printed(first), mode)
			if !equalLines(first, second) {
				t.Fatalf("refiltering changed result for %q (%v): %q -> %q", in.query, mode, first, second)
			}
		}
	}
}

func TestFilterReturnsViewsIntoContent(t *testing.T) {
	content := "Rust:\nTrust me."
	got := Filter("rust", content, CaseInsensitive)
	if len(got) != 2 {
		t.Fatalf("expected two lines, got %q", got)
	}
	if got[0] != "Rust:" {
		t.Fatalf("original casing lost: %q", got[0])
	}
	// Lines are substrings of content, so their text must be found at the
	// matching offsets.
	if !strings.HasPrefix(content, got[0]) || !strings.HasSuffix(content, got[1]) {
		t.Fatalf("lines do not come from content: %q", got)
	}
}

func TestLines(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"\n", []string{""}},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\n\n", []string{"a", ""}},
		{"a\r\nb", []string{"a", "b"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\r\r\nb", []string{"a\r", "b"}},
		{"\r\n", []string{""}},
		{"a\rb\nc\r", []string{"a\rb", "c\r"}},
	}
	for _, tc := range cases {
		if got := Lines(tc.in); !equalLines(got, tc.want) {
			t.Fatalf("Lines(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseCaseMode(t *testing.T) {
	cases := []struct {
		input string
		want  CaseMode
		err   bool
	}{
		{"", CaseSensitive, false},
		{"sensitive", CaseSensitive, false},
		{"INSENSITIVE", CaseInsensitive, false},
		{"ignore-case", CaseInsensitive, false},
		{"fuzzy", CaseSensitive, true},
	}
	for _, tc := range cases {
		got, err := ParseCaseMode(tc.input)
		if tc.err {
			if err == nil {
				t.Fatalf("ParseCaseMode(%q) expected error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseCaseMode(%q) unexpected error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParseCaseMode(%q)=%v want %v", tc.input, got, tc.want)
		}
	}
	if ModeFor(true) != CaseSensitive || ModeFor(false) != CaseInsensitive {
		t.Fatal("ModeFor mapping is inverted")
	}
}

// printed rebuilds content the way output.WriteLines emits it.
func printed(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func positions(query, content string, mode CaseMode) []int {
	lines := Lines(content)
	var out []int
	for i, line := range lines {
		if len(Filter(query, line+"\n", mode)) == 1 {
			out = append(out, i)
		}
	}
	return out
}
