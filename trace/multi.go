package trace

// Multi fans out trace events to multiple tracers.
type Multi struct {
	tracers []Tracer
	level   Level
}

// NewMulti creates a Multi that emits to all provided tracers.
func NewMulti(level Level, tracers ...Tracer) *Multi {
	return &Multi{tracers: tracers, level: level}
}

// Emit sends the event to all underlying tracers.
func (t *Multi) Emit(ev Event) {
	if t == nil || ev.level() > t.level {
		return
	}
	for _, tr := range t.tracers {
		tr.Emit(ev)
	}
}

// Level returns the configured level.
func (t *Multi) Level() Level {
	if t == nil {
		return LevelOff
	}
	return t.level
}

// Enabled returns true if tracing is active.
func (t *Multi) Enabled() bool {
	return t.Level() > LevelOff
}
