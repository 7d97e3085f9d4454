package tick

// VirtualSource is a manually advanced millisecond source for tests and
// simulation. Time stands still until Advance or Set is called, typically
// from inside a pump callback.
type VirtualSource struct {
	now Ticks
}

// Now returns the current virtual tick.
func (s *VirtualSource) Now() Ticks {
	if s == nil {
		return 0
	}
	return s.now
}

// Advance moves the virtual clock forward by d ticks.
func (s *VirtualSource) Advance(d Ticks) {
	if s == nil {
		return
	}
	s.now += d
}

// Set jumps the virtual clock to t. Moving backwards breaks the
// monotonicity contract; callers own that invariant.
func (s *VirtualSource) Set(t Ticks) {
	if s == nil {
		return
	}
	s.now = t
}

// VirtualCycleSource mirrors VirtualSource over cycle counts.
type VirtualCycleSource struct {
	now Cycles
}

// Now returns the current virtual cycle count.
func (s *VirtualCycleSource) Now() Cycles {
	if s == nil {
		return 0
	}
	return s.now
}

// Advance moves the virtual counter forward by d cycles.
func (s *VirtualCycleSource) Advance(d Cycles) {
	if s == nil {
		return
	}
	s.now += d
}

// Set jumps the virtual counter to c.
func (s *VirtualCycleSource) Set(c Cycles) {
	if s == nil {
		return
	}
	s.now = c
}
