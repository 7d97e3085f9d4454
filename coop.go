package coop

import (
	"time"

	"github.com/shpegun60/coop/tick"
)

// defaultContext serves the package-level API for programs with a single
// cooperative domain, mirroring the usual firmware setup of one global
// pump slot.
var defaultContext = New(Config{})

// Default returns the process-wide Context used by the package-level
// functions.
func Default() *Context { return defaultContext }

// SetPump registers fn on the default context. Last registration wins.
func SetPump(fn Pump) { defaultContext.SetPump(fn) }

// Reset clears the default context's pump slot.
func Reset() { defaultContext.Reset() }

// InWait reports whether a wait is active on the default context.
func InWait() bool { return defaultContext.InWait() }

// Service pumps the default context once with the current tick.
func Service(light bool) { defaultContext.Service(light) }

// Delay blocks on the default context for d millisecond ticks.
func Delay(d tick.Ticks) { defaultContext.Delay(d) }

// DelayDuration blocks on the default context for d.
func DelayDuration(d time.Duration) { defaultContext.DelayDuration(d) }

// DelayCycles blocks on the default context for d hardware cycles.
func DelayCycles(d tick.Cycles) { defaultContext.DelayCycles(d) }

// Until waits on the default context for ready, bounded by timeout ticks.
func Until(ready func() bool, timeout tick.Ticks) bool {
	return defaultContext.Until(ready, timeout)
}

// UntilDuration waits on the default context for ready, bounded by timeout.
func UntilDuration(ready func() bool, timeout time.Duration) bool {
	return defaultContext.UntilDuration(ready, timeout)
}
