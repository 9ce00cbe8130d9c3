//go:build !minlog_disabled

package minlog

import (
	"path/filepath"
	"runtime"
)

// Error logs a decorated message at PriorityError. Decorated operations wrap
// the caller's message with a "(file:line) [SEVERITY] " prefix and a "\r\n"
// suffix, emitted as three consecutive sink calls under the handle's guard.
// They are fire-and-forget: sink failures are not surfaced and never abort
// the remaining parts. h must be a non-nil, initialized handle.
func (h *Handle) Error(module Module, format string, args ...any) {
	h.leveled(PriorityError, module, format, args)
}

// Warn logs a decorated message at PriorityWarn.
func (h *Handle) Warn(module Module, format string, args ...any) {
	h.leveled(PriorityWarn, module, format, args)
}

// Info logs a decorated message at PriorityInfo.
func (h *Handle) Info(module Module, format string, args ...any) {
	h.leveled(PriorityInfo, module, format, args)
}

// Debug logs a decorated message at PriorityDebug.
func (h *Handle) Debug(module Module, format string, args ...any) {
	h.leveled(PriorityDebug, module, format, args)
}

// Trace logs a decorated message at PriorityTrace.
func (h *Handle) Trace(module Module, format string, args ...any) {
	h.leveled(PriorityTrace, module, format, args)
}

// Log emits the caller's formatted message with the same filter-and-lock
// discipline as the decorated operations but with no prefix or suffix:
// one sink call under the guard.
func (h *Handle) Log(module Module, priority Priority, format string, args ...any) {
	if h.priorities&priority == 0 || h.modules&module == 0 {
		return
	}
	h.guard.lock()
	_ = h.Write(format, args...)
	h.guard.unlock()
}

func (h *Handle) leveled(priority Priority, module Module, format string, args []any) {
	// Fast-reject path: two bitwise tests, no lock, no sink call.
	if h.priorities&priority == 0 || h.modules&module == 0 {
		return
	}

	file, line := "???", 0
	if _, f, l, ok := runtime.Caller(2); ok {
		file, line = filepath.Base(f), l
	}

	// The guard spans one logical message. All three parts are always
	// emitted; a sink failure mid-sequence is the sink's concern.
	h.guard.lock()
	_ = h.Write("(%s:%d) [%s] ", file, line, priority)
	_ = h.Write(format, args...)
	_ = h.Write("\r\n")
	h.guard.unlock()
}
