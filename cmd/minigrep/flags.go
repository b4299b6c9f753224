package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/phyten/minigrep/internal/config"
)

var (
	errMissingQuery = errors.New("didn't get a query string")
	errMissingFile  = errors.New("didn't get a file name")
)

type cliConfig struct {
	query      string
	filename   string
	configPath string
	showHelp   bool
	search     config.SearchConfig
	log        config.LogConfig
}

// parseArgs reads flags and the QUERY FILE positionals. Flags may appear
// before, between or after the positionals; everything after "--" is
// positional.
func parseArgs(args []string) (cliConfig, error) {
	var cfg cliConfig

	fs := flag.NewFlagSet("minigrep", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		ignoreCase    bool
		caseSensitive bool
		maxFileBytes  int
		color         string
		logFile       string
		verbose       bool
		help          bool
	)
	fs.BoolVar(&ignoreCase, "ignore-case", false, "match case-insensitively")
	fs.BoolVar(&ignoreCase, "i", false, "alias of --ignore-case")
	fs.BoolVar(&caseSensitive, "case-sensitive", false, "match case-sensitively even if CASE_INSENSITIVE is set")
	fs.IntVar(&maxFileBytes, "max-file-bytes", 0, "refuse files larger than N bytes (0=unlimited)")
	fs.StringVar(&color, "color", "auto", "auto|always|never (diagnostics only)")
	fs.StringVar(&logFile, "log-file", "", "append diagnostics to a rotating log file")
	fs.BoolVar(&verbose, "verbose", false, "print diagnostics to stderr")
	fs.BoolVar(&verbose, "v", false, "alias of --verbose")
	fs.StringVar(&cfg.configPath, "config", "", "config file (default: search .minigrep.* upward, then XDG, then HOME)")
	fs.BoolVar(&help, "help", false, "show help")
	fs.BoolVar(&help, "h", false, "alias of --help")

	var positional []string
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				cfg.showHelp = true
				return cfg, nil
			}
			return cfg, err
		}
		remaining := fs.Args()
		consumed := len(rest) - len(remaining)
		if consumed > 0 && rest[consumed-1] == "--" {
			positional = append(positional, remaining...)
			break
		}
		if len(remaining) == 0 {
			break
		}
		positional = append(positional, remaining[0])
		rest = remaining[1:]
	}

	if help {
		cfg.showHelp = true
		return cfg, nil
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if ignoreCase && caseSensitive {
		return cfg, fmt.Errorf("--ignore-case and --case-sensitive are mutually exclusive")
	}
	if ignoreCase {
		v := true
		cfg.search.IgnoreCase = &v
	}
	if caseSensitive {
		v := false
		cfg.search.IgnoreCase = &v
	}
	if set["max-file-bytes"] {
		v := maxFileBytes
		cfg.search.MaxFileBytes = &v
	}
	if set["color"] {
		v := color
		cfg.log.Color = &v
	}
	if set["log-file"] {
		v := logFile
		cfg.log.LogFile = &v
	}
	if set["verbose"] || set["v"] {
		v := verbose
		cfg.log.Verbose = &v
	}

	switch len(positional) {
	case 0:
		return cfg, errMissingQuery
	case 1:
		cfg.query = positional[0]
		return cfg, errMissingFile
	case 2:
		cfg.query = positional[0]
		cfg.filename = positional[1]
	default:
		return cfg, fmt.Errorf("unexpected argument: %s", positional[2])
	}
	return cfg, nil
}
