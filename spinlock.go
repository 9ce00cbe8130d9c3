package minlog

import "sync/atomic"

// spinLock is a busy-wait mutual-exclusion primitive. Contended acquirers
// spin without parking, which keeps the facility free of runtime scheduling
// dependencies and safe to use from contexts where blocking primitives are
// unavailable. The zero value is unlocked.
type spinLock struct {
	state atomic.Uint32
}

func (l *spinLock) lock() {
	for !l.state.CompareAndSwap(0, 1) {
	}
}

func (l *spinLock) unlock() {
	l.state.Store(0)
}
