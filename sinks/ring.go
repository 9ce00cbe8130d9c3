package sinks

import "sync"

// Ring returns an in-memory sink retaining the last size bytes emitted.
// Useful for post-mortem capture in environments with no console: keep a
// ring in the component's memory and dump Snapshot on fault.
func Ring(size int) *RingSink {
	if size <= 0 {
		size = 4096
	}
	return &RingSink{buf: make([]byte, size)}
}

// RingSink is a fixed-capacity byte ring. Older bytes are overwritten once
// the capacity is exceeded.
type RingSink struct {
	mu    sync.Mutex
	buf   []byte
	w     int
	total int
}

// Emit appends p to the ring, overwriting the oldest bytes on wrap.
func (s *RingSink) Emit(p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Only the last len(buf) bytes of an oversized emit can survive anyway.
	if len(p) > len(s.buf) {
		p = p[len(p)-len(s.buf):]
	}
	n := copy(s.buf[s.w:], p)
	if n < len(p) {
		copy(s.buf, p[n:])
	}
	s.w = (s.w + len(p)) % len(s.buf)
	s.total += len(p)
	return nil
}

// Snapshot returns the retained bytes in emission order.
func (s *RingSink) Snapshot() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.total < len(s.buf) {
		out := make([]byte, s.w)
		copy(out, s.buf[:s.w])
		return out
	}
	out := make([]byte, len(s.buf))
	n := copy(out, s.buf[s.w:])
	copy(out[n:], s.buf[:s.w])
	return out
}

// Reset discards all retained bytes.
func (s *RingSink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w = 0
	s.total = 0
}
