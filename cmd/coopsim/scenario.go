package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// scenario describes one simulator run: how the virtual clock advances
// per pump, which periodic tasks the pump services, and the script of
// wait operations to execute.
type scenario struct {
	Clock clockConfig  `toml:"clock"`
	Tasks []taskConfig `toml:"task"`
	Ops   []opConfig   `toml:"op"`
}

type clockConfig struct {
	// StepMs is how many virtual milliseconds each pump call advances.
	StepMs uint64 `toml:"step_ms"`

	// CyclesPerMs maps virtual milliseconds onto the cycle counter.
	CyclesPerMs uint64 `toml:"cycles_per_ms"`
}

type taskConfig struct {
	Name     string `toml:"name"`
	PeriodMs uint64 `toml:"period_ms"`

	// SkipLight makes the task sit out latency-sensitive pumps, the
	// intended use of the light hint.
	SkipLight bool `toml:"skip_light"`
}

type opConfig struct {
	Kind       string `toml:"kind"` // delay | delay-cycles | until
	Name       string `toml:"name"`
	DurationMs uint64 `toml:"duration_ms"`
	Cycles     uint64 `toml:"cycles"`
	TimeoutMs  uint64 `toml:"timeout_ms"`

	// ReadyAfterMs is when the until predicate turns true, measured from
	// the start of the op. Negative means never (the timeout path).
	ReadyAfterMs int64 `toml:"ready_after_ms"`
}

const (
	opKindDelay       = "delay"
	opKindDelayCycles = "delay-cycles"
	opKindUntil       = "until"
)

// label returns the display name of an op.
func (op opConfig) label(index int) string {
	if strings.TrimSpace(op.Name) != "" {
		return op.Name
	}
	return fmt.Sprintf("%s#%d", op.Kind, index+1)
}

func loadScenario(path string) (scenario, error) {
	var sc scenario
	meta, err := toml.DecodeFile(path, &sc)
	if err != nil {
		return scenario{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if !meta.IsDefined("clock", "step_ms") {
		sc.Clock.StepMs = 1
	}
	if sc.Clock.StepMs == 0 {
		return scenario{}, fmt.Errorf("%s: [clock].step_ms must be > 0", path)
	}
	if !meta.IsDefined("clock", "cycles_per_ms") {
		sc.Clock.CyclesPerMs = 1000
	}
	if sc.Clock.CyclesPerMs == 0 {
		return scenario{}, fmt.Errorf("%s: [clock].cycles_per_ms must be > 0", path)
	}

	seen := make(map[string]struct{}, len(sc.Tasks))
	for i, task := range sc.Tasks {
		if strings.TrimSpace(task.Name) == "" {
			return scenario{}, fmt.Errorf("%s: [[task]] %d: missing name", path, i+1)
		}
		if _, dup := seen[task.Name]; dup {
			return scenario{}, fmt.Errorf("%s: duplicate task name %q", path, task.Name)
		}
		seen[task.Name] = struct{}{}
		if task.PeriodMs == 0 {
			return scenario{}, fmt.Errorf("%s: task %q: period_ms must be > 0", path, task.Name)
		}
	}

	if len(sc.Ops) == 0 {
		return scenario{}, fmt.Errorf("%s: no [[op]] entries", path)
	}
	for i, op := range sc.Ops {
		switch op.Kind {
		case opKindDelay:
			if op.DurationMs == 0 {
				return scenario{}, fmt.Errorf("%s: op %s: duration_ms must be > 0", path, op.label(i))
			}
		case opKindDelayCycles:
			if op.Cycles == 0 {
				return scenario{}, fmt.Errorf("%s: op %s: cycles must be > 0", path, op.label(i))
			}
		case opKindUntil:
			// timeout_ms 0 is legal: it degenerates to a single
			// predicate check. ready_after_ms < 0 means never ready.
		default:
			return scenario{}, fmt.Errorf("%s: op %d: invalid kind %q (expected: delay|delay-cycles|until)", path, i+1, op.Kind)
		}
	}

	return sc, nil
}
