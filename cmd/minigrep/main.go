package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/phyten/minigrep/internal/config"
	"github.com/phyten/minigrep/internal/engine"
	"github.com/phyten/minigrep/internal/logging"
	"github.com/phyten/minigrep/internal/output"
	"github.com/phyten/minigrep/internal/termcolor"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

const usageText = `minigrep - print the lines of FILE that contain QUERY

Usage:
  minigrep [flags] QUERY FILE

Flags:
  -i, --ignore-case        match case-insensitively
      --case-sensitive     match case-sensitively even if CASE_INSENSITIVE is set
      --max-file-bytes N   refuse files larger than N bytes (0=unlimited)
      --color MODE         auto|always|never (diagnostics only)
      --log-file PATH      append diagnostics to a rotating log file
  -v, --verbose            print diagnostics to stderr
      --config PATH        config file to load
  -h, --help               show this help

Environment:
  CASE_INSENSITIVE         if set (to any value), match case-insensitively
  MINIGREP_CASE_MODE       sensitive|insensitive
  MINIGREP_IGNORE_CASE, MINIGREP_MAX_FILE_BYTES, MINIGREP_COLOR,
  MINIGREP_LOG_FILE, MINIGREP_VERBOSE, MINIGREP_CONFIG

Config files:
  .minigrep.{yaml,yml,toml,json} in the current directory or a parent,
  $XDG_CONFIG_HOME/minigrep/config.*, then $HOME/.minigrep.*
  Precedence: defaults < config file < environment < flags.
`

func main() {
	log.SetFlags(0)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Environ()))
}

// run is the whole program; it returns the process exit status.
func run(args []string, stdout, stderr io.Writer, environ []string) int {
	env := termcolor.EnvMap(environ)
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	rep := reporter{w: stderr, color: colorEnabled(termcolor.ModeAuto, stderr, env)}

	cli, err := parseArgs(args)
	if err != nil {
		rep.fail("problem parsing arguments", err, true)
		return exitUsage
	}
	if cli.showHelp {
		_, _ = io.WriteString(stdout, usageText)
		return exitOK
	}

	explicit := cli.configPath
	if strings.TrimSpace(explicit) == "" {
		explicit = env["MINIGREP_CONFIG"]
	}
	cfgPath, where, err := config.Find(".", explicit, env["XDG_CONFIG_HOME"], env["HOME"])
	if err != nil {
		rep.fail("config", err, false)
		return exitUsage
	}
	fileCfg, err := config.Load(cfgPath)
	if err != nil {
		rep.fail("config", err, false)
		return exitUsage
	}
	envCfg, err := config.FromEnv(lookup)
	if err != nil {
		rep.fail("environment", err, false)
		return exitUsage
	}

	searchSettings := config.MergeSearch(config.DefaultSearchSettings(), fileCfg.Search, envCfg.Search, cli.search)
	if err := config.ValidateSearch(searchSettings); err != nil {
		rep.fail("config", err, false)
		return exitUsage
	}
	logSettings, err := config.NormalizeLog(config.MergeLog(config.DefaultLogSettings(), fileCfg.Log, envCfg.Log, cli.log))
	if err != nil {
		rep.fail("config", err, false)
		return exitUsage
	}
	if mode, parseErr := termcolor.ParseMode(logSettings.Color); parseErr == nil {
		rep.color = colorEnabled(mode, stderr, env)
	}

	logger, err := logging.New(stderr, logging.DefaultConfig(logSettings.LogFile, logSettings.Verbose))
	if err != nil {
		rep.fail("config", err, false)
		return exitUsage
	}
	defer func() {
		_ = logger.Close()
	}()
	if cfgPath != "" {
		logger.Debugf("config: %s (%s)", cfgPath, where)
	}

	opts := engine.Options{
		Query:        cli.query,
		Path:         cli.filename,
		Mode:         searchSettings.Mode(),
		MaxFileBytes: searchSettings.MaxFileBytes,
	}
	logger.Debugf("searching %q in %s (%s)", opts.Query, opts.Path, opts.Mode)

	res, err := engine.Run(opts)
	if err != nil {
		logger.Errorf("%v", err)
		rep.fail("application error", err, false)
		return exitError
	}
	if err := output.WriteLines(stdout, res.Lines); err != nil {
		logger.Errorf("write: %v", err)
		rep.fail("application error", err, false)
		return exitError
	}
	logger.Debugf("%d of %d lines matched in %dms", res.Matched, res.Total, res.ElapsedMS)
	return exitOK
}

type reporter struct {
	w     io.Writer
	color bool
}

func (r reporter) fail(context string, err error, usageHint bool) {
	label := termcolor.Apply(termcolor.ErrorStyle(), "error:", r.color)
	fmt.Fprintf(r.w, "minigrep: %s %s: %v\n", label, context, err)
	if usageHint && (errors.Is(err, errMissingQuery) || errors.Is(err, errMissingFile)) {
		fmt.Fprintln(r.w, termcolor.Apply(termcolor.HintStyle(), "usage: minigrep [flags] QUERY FILE (see --help)", r.color))
	}
}

func colorEnabled(mode termcolor.ColorMode, w io.Writer, env map[string]string) bool {
	f, _ := w.(*os.File)
	return termcolor.Enabled(mode, f, env)
}
