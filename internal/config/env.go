package config

import (
	"os"
	"strconv"
	"strings"
)

// FromEnv overlays MINLOG_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("MINLOG_MODULES"); v != "" {
		cfg.Modules = splitList(v)
	}
	if v := os.Getenv("MINLOG_PRIORITIES"); v != "" {
		cfg.Priorities = splitList(v)
	}
	if v := os.Getenv("MINLOG_CUSTOM_MODULES"); v != "" {
		cfg.CustomModules = splitList(v)
	}
	if v := os.Getenv("MINLOG_SINK"); v != "" {
		cfg.Sink.Type = v
	}
	if v := os.Getenv("MINLOG_SINK_PATH"); v != "" {
		cfg.Sink.Path = v
	}
	if v := os.Getenv("MINLOG_SINK_COLOR"); v != "" {
		cfg.Sink.Color = v
	}
	if v := os.Getenv("MINLOG_SINK_STDERR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Sink.Stderr = b
		}
	}
	if v := os.Getenv("MINLOG_SINK_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Sink.Size = n
		}
	}
	if v := os.Getenv("MINLOG_SINK_SYNC_EACH"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Sink.SyncEach = b
		}
	}
}

func splitList(v string) []string {
	seps := func(r rune) bool { return r == ',' || r == '|' }
	var out []string
	for _, p := range strings.FieldsFunc(v, seps) {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
