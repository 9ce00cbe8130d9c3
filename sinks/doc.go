// Package sinks provides reference Sink implementations for minlog handles.
//
// # Overview
//
// The facility core deliberately knows nothing about transports; it only
// invokes a Sink. This package supplies the common endpoints an integrator
// reaches for first:
//
//   - Writer: adapt any io.Writer (os.Stderr, a serial port device file).
//   - Console: stdout/stderr with optional per-severity color on terminals.
//   - File: append-mode log file, optionally fsyncing each emit.
//   - Ring: fixed-capacity in-memory byte ring for post-mortem capture.
//   - Multi: fan out one emission to several sinks.
//
// All sinks here are safe for concurrent use by multiple handles. None of
// them call back into a handle, honoring the facility's no-reentrancy
// contract.
package sinks
