package tick

import "time"

// processStart anchors the system counters. time.Since reads the Go
// runtime's monotonic clock, so wall-clock adjustments never move ticks
// backwards.
var processStart = time.Now()

// SystemSource reads the process-monotonic millisecond clock.
// The zero value is ready to use.
type SystemSource struct{}

// Now returns milliseconds elapsed since process start.
func (SystemSource) Now() Ticks {
	return Ticks(time.Since(processStart) / time.Millisecond)
}

// SystemCycleSource reads a nanosecond-resolution monotonic counter. On
// hosted targets it stands in for a CPU cycle counter, counting one cycle
// per nanosecond.
type SystemCycleSource struct{}

// Now returns nanoseconds elapsed since process start.
func (SystemCycleSource) Now() Cycles {
	return Cycles(time.Since(processStart))
}
