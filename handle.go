package minlog

import (
	"errors"
	"fmt"
)

// Errors reported by handle construction and the raw write path.
var (
	ErrNilHandle      = errors.New("minlog: nil handle")
	ErrNilSink        = errors.New("minlog: nil sink")
	ErrNotInitialized = errors.New("minlog: handle not initialized")
)

// Handle bundles a sink binding, the module/priority filter masks, and the
// guard that serializes multi-part writes. A Handle lives in caller storage:
// declare one (or embed it) and pass it to Init. It holds no resources beyond
// the guard, so there is no teardown; discarding the storage is enough.
//
// The masks and sink binding are set once by Init and must be treated as
// immutable afterwards. Reconfiguring a handle that other goroutines are
// logging through requires external synchronization.
type Handle struct {
	sink       Sink
	modules    Module
	priorities Priority
	guard      spinLock
}

// Init populates h and resets its guard to the unlocked state, establishing a
// fresh critical-section invariant even if the storage previously held
// arbitrary bytes. It fails without mutating h when h or sink is nil. Masks
// may be any bit pattern; zero means nothing passes.
func Init(h *Handle, sink Sink, modules Module, priorities Priority) error {
	if h == nil {
		return ErrNilHandle
	}
	if sink == nil {
		return ErrNilSink
	}
	h.sink = sink
	h.modules = modules
	h.priorities = priorities
	h.guard = spinLock{}
	return nil
}

// New allocates and initializes a Handle.
func New(sink Sink, modules Module, priorities Priority) (*Handle, error) {
	h := &Handle{}
	if err := Init(h, sink, modules, priorities); err != nil {
		return nil, err
	}
	return h, nil
}

// Write emits one formatted message with no filtering, no decoration and no
// locking: exactly one sink call. It is the raw escape hatch the decorated
// operations build on; use it directly only when unfiltered output is wanted,
// since it bypasses the guard and can interleave with decorated messages.
// The sink's result is returned verbatim.
func (h *Handle) Write(format string, args ...any) error {
	if h == nil {
		return ErrNilHandle
	}
	if h.sink == nil {
		return ErrNotInitialized
	}
	return h.sink.Emit([]byte(fmt.Sprintf(format, args...)))
}
