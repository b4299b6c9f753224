package termcolor

import (
	"fmt"
	"strings"
)

type Style struct {
	Bold    bool
	Dim     bool
	FGBasic *int
}

func Apply(s Style, text string, enabled bool) string {
	if !enabled || text == "" {
		return text
	}
	codes := sgrCodes(s)
	if len(codes) == 0 {
		return text
	}
	return "\x1b[" + strings.Join(codes, ";") + "m" + text + "\x1b[0m"
}

func sgrCodes(s Style) []string {
	codes := make([]string, 0, 3)
	if s.Bold {
		codes = append(codes, "1")
	}
	if s.Dim {
		codes = append(codes, "2")
	}
	if s.FGBasic != nil {
		codes = append(codes, fmt.Sprintf("3%d", *s.FGBasic))
	}
	return codes
}

// ErrorStyle is used for the "error:" label of fatal diagnostics.
func ErrorStyle() Style {
	color := 1
	return Style{Bold: true, FGBasic: &color}
}

// HintStyle is used for usage hints that follow an error.
func HintStyle() Style {
	return Style{Dim: true}
}
