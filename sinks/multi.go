package sinks

import (
	"errors"

	"github.com/rzbill/minlog"
)

// Multi fans one emission out to every sink in order. Every sink is always
// attempted; failures are joined into the returned error rather than
// short-circuiting, matching the facility's forward-progress policy.
func Multi(targets ...minlog.Sink) minlog.Sink {
	return multiSink(targets)
}

type multiSink []minlog.Sink

func (m multiSink) Emit(p []byte) error {
	var errs []error
	for _, s := range m {
		if err := s.Emit(p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
