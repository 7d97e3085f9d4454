package coop

import (
	"time"

	"github.com/shpegun60/coop/tick"
	"github.com/shpegun60/coop/trace"
)

// Wait loop policy, fixed for the whole package:
//
//   - Delay and DelayCycles pump first and check expiry second, so the
//     pump runs at least once per call even for a zero duration.
//   - Until checks the predicate first, then the timeout, then pumps, so
//     an immediately-true predicate returns without a single pump call
//     and a zero timeout degenerates to one predicate check.
//
// None of these operations report timer or pump failures; a conditional
// wait answers only "did the condition arrive in time".

const (
	noteDelay       = "delay"
	noteDelayCycles = "delay-cycles"
	noteUntil       = "until"
)

// Delay blocks for d millisecond ticks, pumping on every iteration.
// Returns only once the countdown timer reports expired. A zero d still
// performs exactly one pump call.
func (c *Context) Delay(d tick.Ticks) {
	if c == nil {
		return
	}
	t := tick.NewTimer(c.ticks, d)
	c.beginWait(noteDelay)
	defer c.endWait(noteDelay)
	for {
		c.Pump(c.now(), true)
		if t.Expired() {
			return
		}
	}
}

// DelayDuration is Delay over a time.Duration. Durations below one
// millisecond (including negative ones) behave as Delay(0).
func (c *Context) DelayDuration(d time.Duration) {
	ticks, err := tick.FromDuration(d)
	if err != nil {
		ticks = 0
	}
	c.Delay(ticks)
}

// DelayCycles blocks for d hardware cycles, for delays too short to
// resolve at millisecond granularity. Same contract as Delay; the pump
// still receives millisecond ticks.
func (c *Context) DelayCycles(d tick.Cycles) {
	if c == nil {
		return
	}
	t := tick.NewCycleTimer(c.cycles, d)
	c.beginWait(noteDelayCycles)
	defer c.endWait(noteDelayCycles)
	for {
		c.Pump(c.now(), true)
		if t.Expired() {
			return
		}
	}
}

// Until polls ready until it reports true or timeout millisecond ticks
// elapse, pumping between evaluations. Returns true as soon as ready
// reports true, false once the timeout timer expires first. The timeout
// is measured from the call, not from the first pump.
//
// A nil ready never becomes true and fails once the timeout expires.
// Cancellation is not supported natively: encode the cancel signal into
// ready itself.
func (c *Context) Until(ready func() bool, timeout tick.Ticks) bool {
	if c == nil {
		return false
	}
	if ready == nil {
		ready = func() bool { return false }
	}
	t := tick.NewTimer(c.ticks, timeout)
	c.beginWait(noteUntil)
	defer c.endWait(noteUntil)
	for {
		if ready() {
			return true
		}
		if t.Expired() {
			c.emit(trace.Event{Kind: trace.KindTimeout, At: c.now(), Depth: c.depth, Note: noteUntil})
			return false
		}
		c.Pump(c.now(), true)
	}
}

// UntilDuration is Until over a time.Duration timeout. Durations below
// one millisecond behave as a zero timeout.
func (c *Context) UntilDuration(ready func() bool, timeout time.Duration) bool {
	ticks, err := tick.FromDuration(timeout)
	if err != nil {
		ticks = 0
	}
	return c.Until(ready, ticks)
}
