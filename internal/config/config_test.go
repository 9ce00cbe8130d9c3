package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rzbill/minlog"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Sink.Type != "console" {
		t.Fatalf("default sink should be console")
	}
	if len(cfg.Modules) != 1 || cfg.Modules[0] != "all" {
		t.Fatalf("default modules should be all, got %v", cfg.Modules)
	}
	if len(cfg.Priorities) != 3 {
		t.Fatalf("default priorities: %v", cfg.Priorities)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "minlog.yaml")
	data := []byte("modules: [paging, vmx]\npriorities: [error, trace]\ncustomModules: [vmx]\nsink:\n  type: file\n  path: /tmp/minlog.out\n  syncEach: true\n")
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Sink.Type != "file" || cfg.Sink.Path != "/tmp/minlog.out" || !cfg.Sink.SyncEach {
		t.Fatalf("sink config: %+v", cfg.Sink)
	}
	if len(cfg.Modules) != 2 || cfg.Modules[1] != "vmx" {
		t.Fatalf("modules: %v", cfg.Modules)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "minlog.json")
	data := []byte(`{"priorities":["error"],"sink":{"type":"ring","size":1024}}`)
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Sink.Type != "ring" || cfg.Sink.Size != 1024 {
		t.Fatalf("sink config: %+v", cfg.Sink)
	}
	if len(cfg.Priorities) != 1 || cfg.Priorities[0] != "error" {
		t.Fatalf("priorities: %v", cfg.Priorities)
	}
}

func TestLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "minlog.yaml")
	if err := os.WriteFile(file, []byte(":\n  - ["), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(file); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestFromEnv(t *testing.T) {
	cfg := Default()
	t.Setenv("MINLOG_MODULES", "paging|vmx")
	t.Setenv("MINLOG_PRIORITIES", "error,trace")
	t.Setenv("MINLOG_CUSTOM_MODULES", "vmx")
	t.Setenv("MINLOG_SINK", "ring")
	t.Setenv("MINLOG_SINK_SIZE", "512")
	FromEnv(&cfg)
	if len(cfg.Modules) != 2 || cfg.Modules[1] != "vmx" {
		t.Fatalf("modules overlay: %v", cfg.Modules)
	}
	if len(cfg.Priorities) != 2 || cfg.Priorities[1] != "trace" {
		t.Fatalf("priorities overlay: %v", cfg.Priorities)
	}
	if cfg.Sink.Type != "ring" || cfg.Sink.Size != 512 {
		t.Fatalf("sink overlay: %+v", cfg.Sink)
	}
}

func TestRegistryAndMasks(t *testing.T) {
	cfg := Default()
	cfg.CustomModules = []string{"vmx", "ept"}
	cfg.Modules = []string{"paging", "ept"}
	cfg.Priorities = []string{"error", "warn"}

	reg, err := Registry(cfg)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	modules, priorities, err := Masks(cfg, reg)
	if err != nil {
		t.Fatalf("masks: %v", err)
	}
	ept, _ := reg.Lookup("ept")
	if modules != minlog.ModulePaging|ept {
		t.Fatalf("module mask: %#x", uint32(modules))
	}
	if priorities != minlog.PriorityError|minlog.PriorityWarn {
		t.Fatalf("priority mask: %#x", uint32(priorities))
	}
}

func TestMasksUnknownName(t *testing.T) {
	cfg := Default()
	cfg.Priorities = []string{"verbose"}
	reg, err := Registry(cfg)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	if _, _, err := Masks(cfg, reg); err == nil {
		t.Fatalf("expected error for unknown priority name")
	}
}
