package main

import (
	"fortio.org/safecast"

	"github.com/shpegun60/coop"
	"github.com/shpegun60/coop/tick"
)

// simulator is the pump side of a scenario run. Each pump call advances
// the virtual clocks by one step and services the periodic tasks, which
// is exactly what a firmware pump does with its hardware tick.
type simulator struct {
	ticks  *tick.VirtualSource
	cycles *tick.VirtualCycleSource

	step        tick.Ticks
	cyclesPerMs tick.Cycles

	tasks []*simTask
	pumps uint64
}

type simTask struct {
	name      string
	period    tick.Ticks
	skipLight bool
	next      tick.Ticks
	fires     uint64
}

func newSimulator(sc scenario, ticks *tick.VirtualSource, cycles *tick.VirtualCycleSource) *simulator {
	sim := &simulator{
		ticks:       ticks,
		cycles:      cycles,
		step:        tick.Ticks(sc.Clock.StepMs),
		cyclesPerMs: tick.Cycles(sc.Clock.CyclesPerMs),
	}
	for _, task := range sc.Tasks {
		sim.tasks = append(sim.tasks, &simTask{
			name:      task.Name,
			period:    tick.Ticks(task.PeriodMs),
			skipLight: task.SkipLight,
			next:      tick.Ticks(task.PeriodMs),
		})
	}
	return sim
}

// pump is registered as the coop pump callback for the run.
func (s *simulator) pump(_ tick.Ticks, light bool) {
	s.pumps++
	s.ticks.Advance(s.step)
	s.cycles.Advance(s.cyclesPerMs * tick.Cycles(s.step))

	now := s.ticks.Now()
	for _, task := range s.tasks {
		if light && task.skipLight {
			continue
		}
		for task.next <= now {
			task.fires++
			task.next += task.period
		}
	}
}

// opResult records one executed wait operation.
type opResult struct {
	label   string
	kind    string
	ok      bool
	pumps   uint64
	elapsed tick.Ticks
}

// execute runs a single scripted operation on ctx and measures it.
func (s *simulator) execute(ctx *coop.Context, index int, op opConfig) opResult {
	result := opResult{label: op.label(index), kind: op.Kind, ok: true}
	startTicks := s.ticks.Now()
	startPumps := s.pumps

	switch op.Kind {
	case opKindDelay:
		ctx.Delay(tick.Ticks(op.DurationMs))
	case opKindDelayCycles:
		ctx.DelayCycles(tick.Cycles(op.Cycles))
	case opKindUntil:
		result.ok = ctx.Until(s.readyFunc(op, startTicks), tick.Ticks(op.TimeoutMs))
	}

	result.pumps = s.pumps - startPumps
	result.elapsed = s.ticks.Now() - startTicks
	return result
}

// readyFunc builds the until predicate: true once ready_after_ms virtual
// milliseconds have passed since the op started, never for negative
// values.
func (s *simulator) readyFunc(op opConfig, start tick.Ticks) func() bool {
	if op.ReadyAfterMs < 0 {
		return func() bool { return false }
	}
	after, err := safecast.Conv[uint64](op.ReadyAfterMs)
	if err != nil {
		return func() bool { return false }
	}
	readyAt := start + tick.Ticks(after)
	return func() bool { return s.ticks.Now() >= readyAt }
}
