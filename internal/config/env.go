package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/phyten/minigrep/internal/search"
)

// FromEnv builds a config layer from MINIGREP_* variables and the
// CASE_INSENSITIVE toggle. lookup has the shape of os.LookupEnv so that an
// empty but present variable can be told apart from an unset one.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	if lookup == nil {
		lookup = func(string) (string, bool) { return "", false }
	}
	var cfg Config
	var errs []error

	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}
	setString := func(target **string, key string) {
		raw := get(key)
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setBool := func(target **bool, key string) {
		raw := get(key)
		if raw == "" {
			return
		}
		v, err := ParseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}
	setInt := func(target **int, key string, min, max int) {
		raw := get(key)
		if raw == "" {
			return
		}
		v, err := ParseIntInRange(raw, key, min, max)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}

	if raw := get("MINIGREP_CASE_MODE"); raw != "" {
		mode, err := search.ParseCaseMode(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid value for MINIGREP_CASE_MODE: %w", err))
		} else {
			cfg.Search.IgnoreCase = boolPtr(mode == search.CaseInsensitive)
		}
	}
	setBool(&cfg.Search.IgnoreCase, "MINIGREP_IGNORE_CASE")
	setInt(&cfg.Search.MaxFileBytes, "MINIGREP_MAX_FILE_BYTES", 0, math.MaxInt)
	setString(&cfg.Log.Color, "MINIGREP_COLOR")
	setString(&cfg.Log.LogFile, "MINIGREP_LOG_FILE")
	setBool(&cfg.Log.Verbose, "MINIGREP_VERBOSE")

	// Presence alone counts; the value (even "0" or "") is not inspected.
	if _, ok := lookup(CaseInsensitiveEnv); ok {
		cfg.Search.IgnoreCase = boolPtr(true)
	}

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}
