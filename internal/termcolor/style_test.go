package termcolor

import "testing"

func TestApply(t *testing.T) {
	got := Apply(ErrorStyle(), "error:", true)
	want := "\x1b[1;31merror:\x1b[0m"
	if got != want {
		t.Fatalf("Apply produced %q, want %q", got, want)
	}

	if got := Apply(HintStyle(), "usage", true); got != "\x1b[2musage\x1b[0m" {
		t.Fatalf("hint style produced %q", got)
	}
	if got := Apply(Style{}, "Hello", true); got != "Hello" {
		t.Fatalf("empty style should return original text, got %q", got)
	}
	if got := Apply(ErrorStyle(), "Hello", false); got != "Hello" {
		t.Fatalf("disabled Apply should return original text, got %q", got)
	}
	if got := Apply(ErrorStyle(), "", true); got != "" {
		t.Fatalf("empty text should stay empty, got %q", got)
	}
}
