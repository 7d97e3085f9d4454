package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/shpegun60/coop"
	"github.com/shpegun60/coop/tick"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a live cooperative loop on the system clock",
	Long:  `Run a small demo pump against real time and watch tick count, pump calls, and task fires update live`,
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().Uint64("budget-ms", 2, "busy-wait budget per frame in milliseconds")
}

// watchStats is shared between the pump callback and the view. Single
// goroutine: bubbletea's update loop drives the waits, so no locking.
type watchStats struct {
	pumps     uint64
	waits     uint64
	lightSeen uint64
	tasks     []*simTask
}

func runWatch(cmd *cobra.Command, args []string) error {
	budget, err := cmd.Flags().GetUint64("budget-ms")
	if err != nil {
		return fmt.Errorf("failed to get budget-ms flag: %w", err)
	}
	if budget == 0 {
		return fmt.Errorf("--budget-ms must be > 0")
	}

	stats := &watchStats{
		tasks: []*simTask{
			{name: "heartbeat", period: 250, next: 250},
			{name: "telemetry", period: 1000, next: 1000, skipLight: true},
		},
	}

	source := tick.SystemSource{}
	ctx := coop.New(coop.Config{Ticks: source})
	ctx.SetPump(func(now tick.Ticks, light bool) {
		stats.pumps++
		if light {
			stats.lightSeen++
		}
		for _, task := range stats.tasks {
			if light && task.skipLight {
				continue
			}
			for task.next <= now {
				task.fires++
				task.next += task.period
			}
		}
	})

	model := newWatchModel(ctx, stats, tick.Ticks(budget))
	_, err = tea.NewProgram(model).Run()
	return err
}

var (
	watchTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	watchStatStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	watchDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type watchModel struct {
	ctx     *coop.Context
	stats   *watchStats
	budget  tick.Ticks
	spinner spinner.Model
	done    bool
}

type frameMsg struct{}

func newWatchModel(ctx *coop.Context, stats *watchStats, budget tick.Ticks) *watchModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	return &watchModel{
		ctx:     ctx,
		stats:   stats,
		budget:  budget,
		spinner: sp,
	}
}

func (m *watchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.nextFrame())
}

func (m *watchModel) nextFrame() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if m.done {
			return m, nil
		}
		// One real busy-wait per frame: this is the demo's point, the
		// pump runs while the frame blocks.
		m.ctx.Delay(m.budget)
		m.stats.waits++
		return m, m.nextFrame()
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *watchModel) View() string {
	if m.done {
		return ""
	}
	out := watchTitleStyle.Render("coop watch") + " " + m.spinner.View() + "\n\n"
	out += watchStatStyle.Render(fmt.Sprintf("  tick:        %d ms", uint64(m.ctx.Now()))) + "\n"
	out += watchStatStyle.Render(fmt.Sprintf("  waits:       %d (budget %d ms each)", m.stats.waits, uint64(m.budget))) + "\n"
	out += watchStatStyle.Render(fmt.Sprintf("  pump calls:  %d (%d light)", m.stats.pumps, m.stats.lightSeen)) + "\n"
	for _, task := range m.stats.tasks {
		out += watchStatStyle.Render(fmt.Sprintf("  task %-10s %d fires", task.name+":", task.fires)) + "\n"
	}
	out += "\n" + watchDimStyle.Render("press q to quit") + "\n"
	return out
}
