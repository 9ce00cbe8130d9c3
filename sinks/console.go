package sinks

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ColorMode controls whether Console colorizes severity prefixes.
type ColorMode int

const (
	// ColorAuto enables color only when the destination is a terminal.
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ConsoleOptions configures a Console sink.
type ConsoleOptions struct {
	// Stderr routes output to stderr instead of stdout.
	Stderr bool
	// Color selects the colorization mode; default ColorAuto.
	Color ColorMode
}

// Console returns a sink writing to the process's stdout or stderr. When
// color is enabled, emissions carrying a decorated severity tag get their
// tag rendered in a per-severity style; body and suffix parts pass through
// untouched.
func Console(opts ConsoleOptions) *ConsoleSink {
	f := os.Stdout
	if opts.Stderr {
		f = os.Stderr
	}
	color := false
	switch opts.Color {
	case ColorAlways:
		color = true
	case ColorAuto:
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &ConsoleSink{w: f, color: color}
}

// ConsoleSink is the concrete type behind Console, exported so callers can
// retarget it in tests.
type ConsoleSink struct {
	mu    sync.Mutex
	w     io.Writer
	color bool
}

var severityStyles = map[string]lipgloss.Style{
	"[ERROR]": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	"[WARN]":  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
	"[INFO]":  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	"[DEBUG]": lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	"[TRACE]": lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
}

// Emit writes p, colorizing a decorated severity tag when enabled.
func (s *ConsoleSink) Emit(p []byte) error {
	out := p
	if s.color {
		out = colorize(p)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.w.Write(out)
	return err
}

// SetWriter redirects the sink, primarily for tests.
func (s *ConsoleSink) SetWriter(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w = w
}

func colorize(p []byte) []byte {
	for tag, style := range severityStyles {
		if i := bytes.Index(p, []byte(tag)); i >= 0 {
			var b bytes.Buffer
			b.Write(p[:i])
			b.WriteString(style.Render(tag))
			b.Write(p[i+len(tag):])
			return b.Bytes()
		}
	}
	return p
}
