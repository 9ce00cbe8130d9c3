package emitrun

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rzbill/minlog"
	"github.com/rzbill/minlog/internal/config"
	"github.com/rzbill/minlog/sinks"
)

// Options control one emit run.
type Options struct {
	// ConfigPath points at a JSON/YAML config file; empty uses defaults.
	ConfigPath string
	// Module is the module name messages are tagged with (default "paging").
	Module string
	// Priority is the severity name for decorated emission (default "info").
	Priority string
	// Raw bypasses filtering and decoration via the raw write path.
	Raw bool
	// Message is emitted as a single message; when empty, Input is read
	// line by line.
	Message string
	// Input supplies messages when Message is empty; nil means os.Stdin.
	Input io.Reader
	// Sink overrides the configured sink; used by tests.
	Sink minlog.Sink
	// Out receives auxiliary output such as ring dumps; nil means os.Stdout.
	Out io.Writer
}

// Run loads configuration, builds the sink and handle, and emits the
// requested messages through the facility.
func Run(opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	config.FromEnv(&cfg)

	reg, err := config.Registry(cfg)
	if err != nil {
		return err
	}
	modules, priorities, err := config.Masks(cfg, reg)
	if err != nil {
		return fmt.Errorf("resolve filters: %w", err)
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	sink := opts.Sink
	var cleanup func() error
	if sink == nil {
		sink, cleanup, err = BuildSink(cfg.Sink, out)
		if err != nil {
			return err
		}
	}

	var h minlog.Handle
	if err := minlog.Init(&h, sink, modules, priorities); err != nil {
		return err
	}

	moduleName := opts.Module
	if moduleName == "" {
		moduleName = "paging"
	}
	module, err := minlog.ParseModuleMask(moduleName, reg)
	if err != nil {
		return err
	}

	emit, err := leveledEmit(&h, opts)
	if err != nil {
		return err
	}

	if opts.Message != "" {
		emit(module, opts.Message)
	} else {
		in := opts.Input
		if in == nil {
			in = os.Stdin
		}
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			emit(module, sc.Text())
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	}

	if cleanup != nil {
		return cleanup()
	}
	return nil
}

// BuildSink constructs the configured sink. The returned cleanup closes file
// sinks and dumps ring sinks to out; it may be nil.
func BuildSink(sc config.SinkConfig, out io.Writer) (minlog.Sink, func() error, error) {
	switch strings.ToLower(sc.Type) {
	case "", "console":
		var color sinks.ColorMode
		switch strings.ToLower(sc.Color) {
		case "", "auto":
			color = sinks.ColorAuto
		case "always":
			color = sinks.ColorAlways
		case "never":
			color = sinks.ColorNever
		default:
			return nil, nil, fmt.Errorf("invalid sink color %q; use auto|always|never", sc.Color)
		}
		return sinks.Console(sinks.ConsoleOptions{Stderr: sc.Stderr, Color: color}), nil, nil
	case "file":
		if sc.Path == "" {
			return nil, nil, fmt.Errorf("file sink requires a path")
		}
		fs, err := sinks.File(sc.Path, sinks.FileOptions{SyncEach: sc.SyncEach})
		if err != nil {
			return nil, nil, err
		}
		return fs, fs.Close, nil
	case "ring":
		rs := sinks.Ring(sc.Size)
		dump := func() error {
			_, err := out.Write(rs.Snapshot())
			return err
		}
		return rs, dump, nil
	default:
		return nil, nil, fmt.Errorf("unknown sink type %q; use console|file|ring", sc.Type)
	}
}

func leveledEmit(h *minlog.Handle, opts Options) (func(minlog.Module, string), error) {
	if opts.Raw {
		return func(_ minlog.Module, msg string) {
			_ = h.Write("%s\r\n", msg)
		}, nil
	}
	name := opts.Priority
	if name == "" {
		name = "info"
	}
	switch strings.ToLower(name) {
	case "error":
		return func(m minlog.Module, msg string) { h.Error(m, "%s", msg) }, nil
	case "warn", "warning":
		return func(m minlog.Module, msg string) { h.Warn(m, "%s", msg) }, nil
	case "info":
		return func(m minlog.Module, msg string) { h.Info(m, "%s", msg) }, nil
	case "debug":
		return func(m minlog.Module, msg string) { h.Debug(m, "%s", msg) }, nil
	case "trace":
		return func(m minlog.Module, msg string) { h.Trace(m, "%s", msg) }, nil
	default:
		return nil, fmt.Errorf("unknown priority %q; use error|warn|info|debug|trace", name)
	}
}
