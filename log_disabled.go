//go:build minlog_disabled

package minlog

// Built with the minlog_disabled tag, the filtered and decorated operations
// compile to empty bodies: no filter check, no lock, no sink call. The raw
// Write escape hatch and Init remain available.

// Error is a no-op in disabled builds.
func (h *Handle) Error(module Module, format string, args ...any) {}

// Warn is a no-op in disabled builds.
func (h *Handle) Warn(module Module, format string, args ...any) {}

// Info is a no-op in disabled builds.
func (h *Handle) Info(module Module, format string, args ...any) {}

// Debug is a no-op in disabled builds.
func (h *Handle) Debug(module Module, format string, args ...any) {}

// Trace is a no-op in disabled builds.
func (h *Handle) Trace(module Module, format string, args ...any) {}

// Log is a no-op in disabled builds.
func (h *Handle) Log(module Module, priority Priority, format string, args ...any) {}
