package trace

import (
	"fmt"
	"io"
)

// Stream writes each event to an io.Writer as it is emitted, one text
// line per event. Write errors are dropped: a trace sink must never abort
// the wait loop it observes.
type Stream struct {
	w     io.Writer
	level Level
}

// NewStream creates a Stream tracer writing to w.
func NewStream(w io.Writer, level Level) *Stream {
	return &Stream{w: w, level: level}
}

// Emit writes the event as a single line.
func (t *Stream) Emit(ev Event) {
	if t == nil || t.w == nil || ev.level() > t.level {
		return
	}
	fmt.Fprintln(t.w, ev.String())
}

// Level returns the current tracing level.
func (t *Stream) Level() Level {
	if t == nil {
		return LevelOff
	}
	return t.level
}

// Enabled returns true if tracing is active.
func (t *Stream) Enabled() bool {
	return t.Level() > LevelOff
}
