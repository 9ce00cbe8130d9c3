// Package emitrun exposes a shared Run entrypoint used by the CLI to emit
// messages through a configured handle, handling config loading, sink
// construction and cleanup.
//
// Example:
//
//	opts := emitrun.Options{ConfigPath: "minlog.yaml", Priority: "error", Message: "boom"}
//	_ = emitrun.Run(opts)
package emitrun
