package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/phyten/minigrep/internal/search"
)

var searchKeyMap = map[string]string{
	"ignore_case":      "ignore_case",
	"case_insensitive": "ignore_case",
	"case_mode":        "case_mode",
	"case":             "case_mode",
	"max_file_bytes":   "max_file_bytes",
	"max_bytes":        "max_file_bytes",
}

var logKeyMap = map[string]string{
	"color":    "color",
	"log_file": "log_file",
	"logfile":  "log_file",
	"verbose":  "verbose",
}

func Load(path string) (Config, error) {
	var cfg Config
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var raw map[string]any
	switch ext {
	case ".yaml", ".yml":
		if decodeErr := yaml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".toml":
		if decodeErr := toml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".json":
		if decodeErr := json.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}

// decodeConfigMap accepts both sectioned ([search], [log]) and flat layouts.
func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	searchSection := make(map[string]any)
	logSection := make(map[string]any)

	if block, ok := raw["search"]; ok {
		sub, err := toStringKeyMap(block)
		if err != nil {
			return cfg, fmt.Errorf("search: %w", err)
		}
		if err := fillSection(searchSection, sub, searchKeyMap, "search"); err != nil {
			return cfg, err
		}
	}
	if block, ok := raw["log"]; ok {
		sub, err := toStringKeyMap(block)
		if err != nil {
			return cfg, fmt.Errorf("log: %w", err)
		}
		if err := fillSection(logSection, sub, logKeyMap, "log"); err != nil {
			return cfg, err
		}
	}

	for key, value := range raw {
		norm := normalizeKey(key)
		switch norm {
		case "search", "log":
			continue
		default:
			if canonical, ok := searchKeyMap[norm]; ok {
				searchSection[canonical] = value
				continue
			}
			if canonical, ok := logKeyMap[norm]; ok {
				logSection[canonical] = value
				continue
			}
			return cfg, fmt.Errorf("unknown config key: %s", key)
		}
	}

	if err := assignSearch(searchSection, &cfg.Search); err != nil {
		return cfg, fmt.Errorf("search: %w", err)
	}
	if err := assignLog(logSection, &cfg.Log); err != nil {
		return cfg, fmt.Errorf("log: %w", err)
	}
	return cfg, nil
}

func fillSection(dst, src map[string]any, allowed map[string]string, section string) error {
	for key, value := range src {
		canonical, ok := allowed[normalizeKey(key)]
		if !ok {
			return fmt.Errorf("unknown %s key: %s", section, key)
		}
		dst[canonical] = value
	}
	return nil
}

func assignSearch(section map[string]any, dst *SearchConfig) error {
	// case_mode is applied first so an explicit ignore_case in the same
	// section wins regardless of map order.
	if raw, ok := section["case_mode"]; ok {
		b, err := expectCaseMode(raw, "case_mode")
		if err != nil {
			return err
		}
		dst.IgnoreCase = &b
	}

	for key, value := range section {
		switch key {
		case "case_mode":
			continue
		case "ignore_case":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.IgnoreCase = &b
		case "max_file_bytes":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			dst.MaxFileBytes = &n
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func assignLog(section map[string]any, dst *LogConfig) error {
	for key, value := range section {
		switch key {
		case "color":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.Color = &trimmed
		case "log_file":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.LogFile = &trimmed
		case "verbose":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.Verbose = &b
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func expectString(value any, field string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be null", field)
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string for %s, got %T", field, value)
}

func expectBool(value any, field string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return ParseBool(v, field)
	default:
		return false, fmt.Errorf("expected bool for %s, got %T", field, value)
	}
}

// expectCaseMode reports whether the mode named by value is case-insensitive.
func expectCaseMode(value any, field string) (bool, error) {
	str, err := expectString(value, field)
	if err != nil {
		return false, err
	}
	mode, err := search.ParseCaseMode(str)
	if err != nil {
		return false, fmt.Errorf("invalid value for %s: %w", field, err)
	}
	return mode == search.CaseInsensitive, nil
}

func expectInt(value any, field string) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("expected integer for %s, got %v", field, value)
		}
		return int(v), nil
	case json.Number:
		n, err := strconv.Atoi(v.String())
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %v", field, value)
		}
		return n, nil
	case string:
		return parseInt(v, field)
	default:
		return 0, fmt.Errorf("expected integer for %s, got %T", field, value)
	}
}

func toStringKeyMap(v any) (map[string]any, error) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, value := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key: %v", k)
			}
			out[key] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected map, got %T", v)
	}
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	norm = strings.ReplaceAll(norm, "-", "_")
	return norm
}
