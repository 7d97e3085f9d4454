// Package trace records cooperative wait activity for diagnostics.
//
// A Tracer receives one Event per wait boundary, pump invocation, or
// timeout. The package provides several implementations:
//
//   - Nop: zero-overhead no-op tracer when tracing is disabled
//   - Ring: circular buffer keeping the last N events for post-mortem dumps
//   - Stream: immediate text writes to an io.Writer
//   - Multi: fans out to several tracers
//
// Verbosity is controlled by levels:
//
//   - LevelOff: no tracing
//   - LevelWait: wait begin/end and timeouts only
//   - LevelPump: everything, including one event per pump call
//
// Per-pump tracing is noisy by construction (a busy-wait pumps on every
// iteration); the Ring tracer exists so that LevelPump stays affordable.
// Ring snapshots can be serialized with WriteSnapshot and read back with
// ReadSnapshot.
//
// Like the rest of the module, tracers assume a single logical thread and
// take no locks.
package trace
