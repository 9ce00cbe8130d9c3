package minlog

// Sink physically delivers one formatted message fragment. Implementations
// own whatever context they need (a file descriptor, a serial port, a
// buffer); the facility only borrows the sink and never closes it.
//
// Emit is called synchronously, possibly while the emitting handle's guard is
// held. Implementations must not call back into the same handle's logging
// operations: the guard is not reentrant and doing so deadlocks.
type Sink interface {
	Emit(p []byte) error
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(p []byte) error

// Emit calls f.
func (f SinkFunc) Emit(p []byte) error { return f(p) }
