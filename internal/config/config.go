package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rzbill/minlog"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	// Modules and Priorities list filter names ("paging", "all", registered
	// custom names / "error", "warn", ...).
	Modules    []string `json:"modules" yaml:"modules"`
	Priorities []string `json:"priorities" yaml:"priorities"`
	// CustomModules are integrator module names registered (in order) before
	// the module mask is resolved, so configs can filter on them by name.
	CustomModules []string   `json:"customModules" yaml:"customModules"`
	Sink          SinkConfig `json:"sink" yaml:"sink"`
}

// SinkConfig selects and parameterizes the emission endpoint.
type SinkConfig struct {
	// Type is one of console, file, ring.
	Type string `json:"type" yaml:"type"`
	// Path is the log file path when Type is file.
	Path string `json:"path" yaml:"path"`
	// Color is auto, always or never; console only.
	Color string `json:"color" yaml:"color"`
	// Stderr routes console output to stderr.
	Stderr bool `json:"stderr" yaml:"stderr"`
	// Size is the ring capacity in bytes when Type is ring.
	Size int `json:"size" yaml:"size"`
	// SyncEach fsyncs the file after every emit when Type is file.
	SyncEach bool `json:"syncEach" yaml:"syncEach"`
}

// Default returns built-in defaults: every module, the three production
// severities, console output.
func Default() Config {
	return Config{
		Modules:    []string{"all"},
		Priorities: []string{"error", "warn", "info"},
		Sink: SinkConfig{
			Type:  "console",
			Color: "auto",
		},
	}
}

// Load reads configuration from a JSON or YAML file (by extension). If path
// is empty, returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return cfg, nil
}

// Registry builds a module registry holding the built-ins plus cfg's custom
// modules, registered in declaration order.
func Registry(cfg Config) (*minlog.Registry, error) {
	reg := minlog.NewRegistry()
	for _, name := range cfg.CustomModules {
		if _, err := reg.Register(name); err != nil {
			return nil, fmt.Errorf("register module %q: %w", name, err)
		}
	}
	return reg, nil
}

// Masks resolves cfg's filter name lists into bitmasks, using reg for custom
// module names.
func Masks(cfg Config, reg *minlog.Registry) (minlog.Module, minlog.Priority, error) {
	modules, err := minlog.ParseModuleMask(strings.Join(cfg.Modules, "|"), reg)
	if err != nil {
		return 0, 0, err
	}
	priorities, err := minlog.ParsePriorityMask(strings.Join(cfg.Priorities, "|"))
	if err != nil {
		return 0, 0, err
	}
	return modules, priorities, nil
}
