// Package logging sets up minigrep's diagnostic logger.
//
// Diagnostics never go to stdout, which carries only matching lines. They
// are printed to stderr when verbose output is on, and copied to a rotating
// log file when one is configured.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

const prefix = "minigrep: "

type Config struct {
	LogFile    string // empty disables the file
	MaxSize    int    // megabytes
	MaxBackups int
	MaxAge     int // days
	Compress   bool
	Verbose    bool
}

func DefaultConfig(logFile string, verbose bool) Config {
	return Config{
		LogFile:    logFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
		Verbose:    verbose,
	}
}

type Logger struct {
	console *log.Logger
	file    *log.Logger
	closer  io.Closer
}

// New returns a Logger writing diagnostics to stderr (verbose only) and to the
// configured log file.
func New(stderr io.Writer, cfg Config) (*Logger, error) {
	l := &Logger{}
	if cfg.Verbose && stderr != nil {
		l.console = log.New(stderr, prefix, 0)
	}
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, fmt.Errorf("log file: %w", err)
		}
		rotator := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		l.file = log.New(rotator, prefix, log.LstdFlags)
		l.closer = rotator
	}
	return l, nil
}

// Debugf records a diagnostic message.
func (l *Logger) Debugf(format string, args ...any) {
	if l == nil {
		return
	}
	if l.console != nil {
		l.console.Printf(format, args...)
	}
	if l.file != nil {
		l.file.Printf(format, args...)
	}
}

// Errorf records a failure in the log file only; the caller reports it to
// the user.
func (l *Logger) Errorf(format string, args ...any) {
	if l == nil || l.file == nil {
		return
	}
	l.file.Printf("error: "+format, args...)
}

func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
