// Package coop implements cooperative busy-waiting for single-threaded
// targets: bounded delays and condition waits that keep yielding to a
// registered pump callback, so timers, protocol state machines, and other
// background work progress while the caller blocks.
//
// The model is the one used on embedded systems without an RTOS. There is
// no scheduler, no preemption, and no goroutine per task: "waiting" is a
// polling loop that invokes the pump on every iteration, and the pump is
// the only place other cooperative work runs. The whole package assumes a
// single logical thread of control; calling into one Context from several
// goroutines or from interrupt-style contexts without external locking is
// unsupported.
package coop

import (
	"github.com/shpegun60/coop/tick"
	"github.com/shpegun60/coop/trace"
)

// Pump is the cooperative yield callback. It receives the current
// millisecond tick and a latency hint: light is true when the caller is a
// latency-sensitive busy loop, so the pump may skip expensive work.
type Pump func(now tick.Ticks, light bool)

// Config configures a Context. The zero value selects the system counters
// and no tracing.
type Config struct {
	// Ticks supplies millisecond time. Defaults to tick.SystemSource.
	Ticks tick.Source

	// Cycles supplies sub-millisecond time. Defaults to
	// tick.SystemCycleSource.
	Cycles tick.CycleSource

	// Tracer receives wait and pump events. Defaults to trace.Nop.
	Tracer trace.Tracer
}

// Context owns one cooperative domain: a replaceable pump slot and the
// wait-nesting depth. Independent domains (a production loop and a test
// double, say) each get their own Context.
//
// Not safe for concurrent use. Single logical thread only.
type Context struct {
	ticks  tick.Source
	cycles tick.CycleSource
	tracer trace.Tracer
	pump   Pump
	depth  int
}

// New constructs a Context with the provided configuration.
func New(cfg Config) *Context {
	if cfg.Ticks == nil {
		cfg.Ticks = tick.SystemSource{}
	}
	if cfg.Cycles == nil {
		cfg.Cycles = tick.SystemCycleSource{}
	}
	if cfg.Tracer == nil {
		cfg.Tracer = trace.Nop
	}
	return &Context{
		ticks:  cfg.Ticks,
		cycles: cfg.Cycles,
		tracer: cfg.Tracer,
	}
}

// SetPump replaces the current pump callback. Last registration wins; a
// nil fn means "no pump".
func (c *Context) SetPump(fn Pump) {
	if c == nil {
		return
	}
	c.pump = fn
}

// Reset clears the pump slot.
func (c *Context) Reset() {
	c.SetPump(nil)
}

// Pump invokes the registered callback with (now, light). With no
// callback registered this is a no-op, not a failure.
//
// The callback is arbitrary user code and may re-enter wait operations on
// this Context. Nothing here prevents that; InWait exists so the callback
// can detect it and decline to block again.
func (c *Context) Pump(now tick.Ticks, light bool) {
	if c == nil {
		return
	}
	c.emit(trace.Event{Kind: trace.KindPump, At: now, Depth: c.depth, Light: light})
	if c.pump != nil {
		c.pump(now, light)
	}
}

// Service pumps once with the current tick. Convenience for main loops
// that want to yield outside of any wait; light is usually false there.
func (c *Context) Service(light bool) {
	if c == nil {
		return
	}
	c.Pump(c.now(), light)
}

// InWait reports whether any wait operation is currently active on this
// Context, however deeply nested. Pump callbacks use this to avoid
// recursive blocking.
func (c *Context) InWait() bool {
	return c != nil && c.depth > 0
}

// Now returns the current millisecond tick of the context's source.
func (c *Context) Now() tick.Ticks {
	if c == nil {
		return 0
	}
	return c.now()
}

// now tolerates a zero-value Context, which has no source wired in.
func (c *Context) now() tick.Ticks {
	if c.ticks == nil {
		return 0
	}
	return c.ticks.Now()
}

// emit forwards an event to the tracer when one is wired and enabled.
func (c *Context) emit(ev trace.Event) {
	if c.tracer == nil || !c.tracer.Enabled() {
		return
	}
	c.tracer.Emit(ev)
}

// beginWait opens a wait scope: depth goes up on entry and must come back
// down on every exit path, so InWait stays accurate across nesting and
// early returns.
func (c *Context) beginWait(note string) {
	c.depth++
	c.emit(trace.Event{Kind: trace.KindWaitBegin, At: c.now(), Depth: c.depth, Note: note})
}

// endWait closes the scope opened by beginWait.
func (c *Context) endWait(note string) {
	c.emit(trace.Event{Kind: trace.KindWaitEnd, At: c.now(), Depth: c.depth, Note: note})
	c.depth--
}
