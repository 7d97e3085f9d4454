package trace

import "io"

// Ring keeps the last N events in memory (circular buffer). Old events are
// overwritten silently, which keeps per-pump tracing affordable inside
// tight busy-wait loops.
type Ring struct {
	events   []Event
	capacity int
	head     int  // next write position
	full     bool // has wrapped around
	level    Level
}

// NewRing creates a Ring with the specified capacity. Non-positive
// capacities default to 4096.
func NewRing(capacity int, level Level) *Ring {
	if capacity <= 0 {
		capacity = 4096
	}
	return &Ring{
		events:   make([]Event, capacity),
		capacity: capacity,
		level:    level,
	}
}

// Emit adds an event to the ring buffer.
func (t *Ring) Emit(ev Event) {
	if t == nil || t.capacity == 0 || ev.level() > t.level {
		return
	}
	t.events[t.head] = ev
	t.head = (t.head + 1) % t.capacity
	if t.head == 0 {
		t.full = true
	}
}

// Snapshot returns a copy of all stored events in chronological order.
func (t *Ring) Snapshot() []Event {
	if t == nil {
		return nil
	}
	if !t.full {
		result := make([]Event, t.head)
		copy(result, t.events[:t.head])
		return result
	}
	// Wrapped - return [head:capacity] + [0:head]
	result := make([]Event, t.capacity)
	copy(result, t.events[t.head:])
	copy(result[t.capacity-t.head:], t.events[:t.head])
	return result
}

// Len returns the number of stored events.
func (t *Ring) Len() int {
	if t == nil {
		return 0
	}
	if t.full {
		return t.capacity
	}
	return t.head
}

// Dump writes all stored events to w, one text line per event.
func (t *Ring) Dump(w io.Writer) error {
	for _, ev := range t.Snapshot() {
		if _, err := io.WriteString(w, ev.String()+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Level returns the current tracing level.
func (t *Ring) Level() Level {
	if t == nil {
		return LevelOff
	}
	return t.level
}

// Enabled returns true if tracing is active.
func (t *Ring) Enabled() bool {
	return t.Level() > LevelOff
}
