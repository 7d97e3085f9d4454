package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/shpegun60/coop"
	"github.com/shpegun60/coop/tick"
	"github.com/shpegun60/coop/trace"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] <scenario.toml>",
	Short: "Run a wait scenario on a virtual clock",
	Long:  `Run a TOML scenario: a pump advancing virtual time and servicing periodic tasks, plus a script of delay and until operations`,
	Args:  cobra.ExactArgs(1),
	RunE:  runScenario,
}

func init() {
	runCmd.Flags().String("trace", "", "write a trace dump to this path (.mp for msgpack, otherwise text)")
	runCmd.Flags().String("trace-level", "pump", "trace verbosity (off|wait|pump)")
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenarioPath := args[0]

	tracePath, err := cmd.Flags().GetString("trace")
	if err != nil {
		return fmt.Errorf("failed to get trace flag: %w", err)
	}
	traceLevelName, err := cmd.Flags().GetString("trace-level")
	if err != nil {
		return fmt.Errorf("failed to get trace-level flag: %w", err)
	}

	sc, err := loadScenario(scenarioPath)
	if err != nil {
		return err
	}

	var ring *trace.Ring
	tracer := trace.Nop
	if tracePath != "" {
		level, err := trace.ParseLevel(traceLevelName)
		if err != nil {
			return err
		}
		ring = trace.NewRing(0, level)
		tracer = ring
	}

	ticks := &tick.VirtualSource{}
	cycles := &tick.VirtualCycleSource{}
	ctx := coop.New(coop.Config{Ticks: ticks, Cycles: cycles, Tracer: tracer})

	sim := newSimulator(sc, ticks, cycles)
	ctx.SetPump(sim.pump)

	results := make([]opResult, 0, len(sc.Ops))
	for i, op := range sc.Ops {
		results = append(results, sim.execute(ctx, i, op))
	}

	printResults(sim, results)

	if tracePath != "" {
		if err := writeTraceDump(tracePath, ring); err != nil {
			return err
		}
		fmt.Printf("trace: %d events written to %s\n", ring.Len(), tracePath)
	}
	return nil
}

var (
	headColor = color.New(color.FgCyan, color.Bold)
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
)

func printResults(sim *simulator, results []opResult) {
	labelWidth := len("operation")
	for _, r := range results {
		if w := runewidth.StringWidth(r.label); w > labelWidth {
			labelWidth = w
		}
	}

	headColor.Printf("%s  %-8s %8s %8s\n", padRight("operation", labelWidth), "result", "pumps", "ms")
	for _, r := range results {
		// Pad before colorizing: escape codes would skew the width.
		status := okColor.Sprint(padRight("ok", 8))
		if !r.ok {
			status = failColor.Sprint(padRight("timeout", 8))
		}
		fmt.Printf("%s  %s %8d %8d\n",
			padRight(r.label, labelWidth), status, r.pumps, uint64(r.elapsed))
	}

	fmt.Println()
	headColor.Printf("pump calls: %d, final tick: %d\n", sim.pumps, uint64(sim.ticks.Now()))
	for _, task := range sim.tasks {
		fmt.Printf("  task %s: %d fires\n", padRight(task.name, labelWidth), task.fires)
	}
}

func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// writeTraceDump picks the dump format from the file extension: msgpack
// snapshots for .mp, text lines otherwise.
func writeTraceDump(path string, ring *trace.Ring) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create trace dump: %w", err)
	}
	defer f.Close()

	if filepath.Ext(path) == ".mp" {
		return trace.WriteSnapshot(f, ring.Snapshot())
	}
	return ring.Dump(f)
}
