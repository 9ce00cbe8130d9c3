// Package minlog is a minimal, embeddable logging facility for low-level
// components that must not dictate how messages are physically emitted.
//
// # Overview
//
// The package exposes a single stateful type, Handle, which bundles a
// caller-supplied Sink, two bitmask filters (module and priority), and a
// busy-wait guard that serializes multi-part writes. A decorated message is
// emitted as three consecutive sink calls (location/severity prefix, formatted
// body, line terminator) under the guard, so concurrent callers never
// interleave parts of two messages on the same handle.
//
// Quick start
//
//	var h minlog.Handle
//	if err := minlog.Init(&h, sinks.Writer(os.Stderr), minlog.ModuleAll, minlog.PriorityError|minlog.PriorityWarn); err != nil {
//	    // handle unusable
//	}
//	h.Error(minlog.ModulePaging, "map failed: gpa=%#x", gpa)
//
// # Filtering
//
// Priorities and modules are independent bit values, not an ordered scale: a
// handle configured with PriorityError|PriorityTrace accepts exactly those two
// severities for every enabled module. A message passes only if its priority
// bit AND its module bit both intersect the handle's masks. The rejected path
// is two bitwise tests with no lock and no sink call.
//
// Integrators extend the module space with a Registry, which assigns bit
// positions above the reserved built-in range and prevents silent collisions.
//
// # Disabling at build time
//
// Building with the tag "minlog_disabled" compiles the leveled and filtered
// operations down to empty bodies. The raw Write escape hatch and Init remain
// available. There is no runtime switch.
//
// # Sinks
//
// A Sink is anything with Emit(p []byte) error. The facility never interprets
// a sink's failure beyond propagating it from Write; decorated operations are
// fire-and-forget and always complete all three parts of a message. Sink
// implementations must not re-enter the same handle's logging operations, or
// they will deadlock on the guard. Reference implementations (console, file,
// ring buffer, fan-out) live in the sinks subpackage.
package minlog
