// Package tick provides the monotonic counters and one-shot countdown
// timers that drive cooperative waits.
//
// Two unit families share the same shape: millisecond ticks for ordinary
// delays and hardware-style cycle counts for waits too short to resolve
// at millisecond granularity. Sources only answer "now"; timers capture a
// deadline at construction and only answer Expired. Virtual sources stand
// in for the hardware counters in tests and simulation.
//
// Everything in this package assumes a single logical thread of control.
package tick

import (
	"fmt"
	"time"

	"fortio.org/safecast"
)

// Ticks is a monotonically increasing millisecond tick count.
type Ticks uint64

// Cycles is a monotonically increasing hardware cycle count.
type Cycles uint64

// Source supplies the current millisecond tick.
type Source interface {
	Now() Ticks
}

// CycleSource supplies the current cycle count.
type CycleSource interface {
	Now() Cycles
}

// FromDuration converts a duration to millisecond ticks.
// Negative durations are rejected.
func FromDuration(d time.Duration) (Ticks, error) {
	ms, err := safecast.Conv[uint64](d.Milliseconds())
	if err != nil {
		return 0, fmt.Errorf("duration %v is not representable as ticks: %w", d, err)
	}
	return Ticks(ms), nil
}
