// Package config provides loading and environment overlay for the minlog
// CLI's configuration. It exposes a Default() baseline, file loading (JSON or
// YAML by extension), MINLOG_* env overlays, and helpers to resolve the
// declarative filter name lists into a module registry and bitmasks.
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load("/etc/minlog.yaml"); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
//	reg, _ := config.Registry(cfg)
//	modules, priorities, _ := config.Masks(cfg, reg)
package config
