package sinks

import (
	"io"
	"sync"

	"github.com/rzbill/minlog"
)

// Writer adapts an io.Writer to the minlog.Sink interface. Emissions are
// serialized with an internal mutex so one sink can safely back handles on
// several goroutines.
func Writer(w io.Writer) minlog.Sink {
	return &writerSink{w: w}
}

type writerSink struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *writerSink) Emit(p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.w.Write(p)
	return err
}
