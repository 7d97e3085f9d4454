package tick

// Timer is a one-shot millisecond countdown. The deadline is captured at
// construction; an expired timer never un-expires and cannot be reset.
// Timers are plain values, created fresh per wait.
type Timer struct {
	src      Source
	deadline Ticks
}

// NewTimer starts a countdown of d ticks against src.
func NewTimer(src Source, d Ticks) Timer {
	if src == nil {
		return Timer{}
	}
	return Timer{src: src, deadline: src.Now() + d}
}

// Expired reports whether the countdown has run out. A zero-value Timer
// is already expired.
func (t Timer) Expired() bool {
	if t.src == nil {
		return true
	}
	return t.src.Now() >= t.deadline
}

// CycleTimer is Timer over hardware cycle counts.
type CycleTimer struct {
	src      CycleSource
	deadline Cycles
}

// NewCycleTimer starts a countdown of d cycles against src.
func NewCycleTimer(src CycleSource, d Cycles) CycleTimer {
	if src == nil {
		return CycleTimer{}
	}
	return CycleTimer{src: src, deadline: src.Now() + d}
}

// Expired reports whether the countdown has run out. A zero-value
// CycleTimer is already expired.
func (t CycleTimer) Expired() bool {
	if t.src == nil {
		return true
	}
	return t.src.Now() >= t.deadline
}
