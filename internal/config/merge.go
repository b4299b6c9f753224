package config

import "strings"

func boolPtr(v bool) *bool {
	b := v
	return &b
}

// MergeSearch applies layers in order; later layers win.
func MergeSearch(base SearchSettings, layers ...SearchConfig) SearchSettings {
	out := base
	for _, layer := range layers {
		out.IgnoreCase = ResolveBool(out.IgnoreCase, layer.IgnoreCase)
		out.MaxFileBytes = ResolveInt(out.MaxFileBytes, layer.MaxFileBytes)
	}
	return out
}

func MergeLog(base LogSettings, layers ...LogConfig) LogSettings {
	out := base
	for _, layer := range layers {
		out.Color = ResolveAndTrim(out.Color, layer.Color)
		out.LogFile = ResolveAndTrim(out.LogFile, layer.LogFile)
		out.Verbose = ResolveBool(out.Verbose, layer.Verbose)
	}
	if strings.TrimSpace(out.Color) == "" {
		out.Color = "auto"
	}
	return out
}
