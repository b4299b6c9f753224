package config

import (
	"github.com/phyten/minigrep/internal/search"
)

// CaseInsensitiveEnv is the toggle whose mere presence in the environment
// selects case-insensitive matching.
const CaseInsensitiveEnv = "CASE_INSENSITIVE"

type SearchConfig struct {
	IgnoreCase   *bool `yaml:"ignore_case" toml:"ignore_case" json:"ignore_case"`
	MaxFileBytes *int  `yaml:"max_file_bytes" toml:"max_file_bytes" json:"max_file_bytes"`
}

type LogConfig struct {
	Color   *string `yaml:"color" toml:"color" json:"color"`
	LogFile *string `yaml:"log_file" toml:"log_file" json:"log_file"`
	Verbose *bool   `yaml:"verbose" toml:"verbose" json:"verbose"`
}

type Config struct {
	Search SearchConfig `yaml:"search" toml:"search" json:"search"`
	Log    LogConfig    `yaml:"log" toml:"log" json:"log"`
}

type SearchSettings struct {
	IgnoreCase   bool
	MaxFileBytes int
}

type LogSettings struct {
	Color   string
	LogFile string
	Verbose bool
}

// Mode converts the resolved flag into the filter's comparison mode.
func (s SearchSettings) Mode() search.CaseMode {
	return search.ModeFor(!s.IgnoreCase)
}

func DefaultSearchSettings() SearchSettings {
	return SearchSettings{
		IgnoreCase:   false,
		MaxFileBytes: 0,
	}
}

func DefaultLogSettings() LogSettings {
	return LogSettings{
		Color:   "auto",
		LogFile: "",
		Verbose: false,
	}
}
