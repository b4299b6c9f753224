package config

import (
	"fmt"
	"strings"

	"github.com/phyten/minigrep/internal/termcolor"
)

func ValidateSearch(values SearchSettings) error {
	if values.MaxFileBytes < 0 {
		return fmt.Errorf("max_file_bytes must be >= 0")
	}
	return nil
}

func NormalizeLog(values LogSettings) (LogSettings, error) {
	mode, err := termcolor.ParseMode(values.Color)
	if err != nil {
		return values, err
	}
	values.Color = mode.String()
	values.LogFile = strings.TrimSpace(values.LogFile)
	return values, nil
}
