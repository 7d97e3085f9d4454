package main

import (
	"path/filepath"
	"testing"

	"github.com/shpegun60/coop"
	"github.com/shpegun60/coop/tick"
)

func newTestRig(sc scenario) (*coop.Context, *simulator) {
	ticks := &tick.VirtualSource{}
	cycles := &tick.VirtualCycleSource{}
	ctx := coop.New(coop.Config{Ticks: ticks, Cycles: cycles})
	sim := newSimulator(sc, ticks, cycles)
	ctx.SetPump(sim.pump)
	return ctx, sim
}

func TestSimulatorDelayAdvancesClock(t *testing.T) {
	sc := scenario{Clock: clockConfig{StepMs: 1, CyclesPerMs: 1000}}
	ctx, sim := newTestRig(sc)

	result := sim.execute(ctx, 0, opConfig{Kind: opKindDelay, DurationMs: 10})
	if !result.ok {
		t.Fatalf("delay op reported failure")
	}
	if result.pumps != 10 {
		t.Fatalf("pump count: want 10, got %d", result.pumps)
	}
	if result.elapsed != 10 {
		t.Fatalf("elapsed: want 10, got %d", result.elapsed)
	}
	if sim.cycles.Now() != 10000 {
		t.Fatalf("cycle counter: want 10000, got %d", sim.cycles.Now())
	}
}

func TestSimulatorDelayCycles(t *testing.T) {
	sc := scenario{Clock: clockConfig{StepMs: 1, CyclesPerMs: 100}}
	ctx, sim := newTestRig(sc)

	result := sim.execute(ctx, 0, opConfig{Kind: opKindDelayCycles, Cycles: 1000})
	if !result.ok {
		t.Fatalf("delay-cycles op reported failure")
	}
	if result.pumps != 10 {
		t.Fatalf("pump count: want 10, got %d", result.pumps)
	}
}

func TestSimulatorUntilReadyInTime(t *testing.T) {
	sc := scenario{Clock: clockConfig{StepMs: 1, CyclesPerMs: 1000}}
	ctx, sim := newTestRig(sc)

	result := sim.execute(ctx, 0, opConfig{Kind: opKindUntil, TimeoutMs: 200, ReadyAfterMs: 120})
	if !result.ok {
		t.Fatalf("until op timed out although ready at 120ms")
	}
	if result.elapsed != 120 {
		t.Fatalf("elapsed: want 120, got %d", result.elapsed)
	}
}

func TestSimulatorUntilNeverReady(t *testing.T) {
	sc := scenario{Clock: clockConfig{StepMs: 1, CyclesPerMs: 1000}}
	ctx, sim := newTestRig(sc)

	result := sim.execute(ctx, 0, opConfig{Kind: opKindUntil, TimeoutMs: 50, ReadyAfterMs: -1})
	if result.ok {
		t.Fatalf("never-ready until op reported success")
	}
	if result.elapsed != 50 {
		t.Fatalf("elapsed: want 50, got %d", result.elapsed)
	}
}

func TestSimulatorTasksFireOnPeriod(t *testing.T) {
	sc := scenario{
		Clock: clockConfig{StepMs: 1, CyclesPerMs: 1000},
		Tasks: []taskConfig{
			{Name: "fast", PeriodMs: 10},
			{Name: "slow", PeriodMs: 50},
		},
	}
	ctx, sim := newTestRig(sc)

	sim.execute(ctx, 0, opConfig{Kind: opKindDelay, DurationMs: 100})

	if sim.tasks[0].fires != 10 {
		t.Fatalf("fast task fires: want 10, got %d", sim.tasks[0].fires)
	}
	if sim.tasks[1].fires != 2 {
		t.Fatalf("slow task fires: want 2, got %d", sim.tasks[1].fires)
	}
}

func TestScenarioEndToEnd(t *testing.T) {
	sc, err := loadScenario(filepath.Join("testdata", "basic.toml"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	ctx, sim := newTestRig(sc)

	results := make([]opResult, 0, len(sc.Ops))
	for i, op := range sc.Ops {
		results = append(results, sim.execute(ctx, i, op))
	}

	// warmup 50ms + strobe 5000 cycles (5ms) + sensor ready at 120ms
	// + 30ms timeout.
	wantOK := []bool{true, true, true, false}
	for i, r := range results {
		if r.ok != wantOK[i] {
			t.Fatalf("op %s: want ok=%t, got %t", r.label, wantOK[i], r.ok)
		}
	}
	if results[3].elapsed != 30 {
		t.Fatalf("timeout op elapsed: want 30, got %d", results[3].elapsed)
	}
	if sim.ticks.Now() != 205 {
		t.Fatalf("final tick: want 205, got %d", sim.ticks.Now())
	}
}

func TestSimulatorSkipLightTasksSitOutWaits(t *testing.T) {
	sc := scenario{
		Clock: clockConfig{StepMs: 1, CyclesPerMs: 1000},
		Tasks: []taskConfig{
			{Name: "lazy", PeriodMs: 10, SkipLight: true},
		},
	}
	ctx, sim := newTestRig(sc)

	// Waits pump with light=true, so the task never runs.
	sim.execute(ctx, 0, opConfig{Kind: opKindDelay, DurationMs: 100})
	if sim.tasks[0].fires != 0 {
		t.Fatalf("skip_light task fired %d times during a light wait", sim.tasks[0].fires)
	}

	// A heavy service pass catches it up.
	ctx.Service(false)
	if sim.tasks[0].fires == 0 {
		t.Fatalf("skip_light task never caught up on a heavy pump")
	}
}
