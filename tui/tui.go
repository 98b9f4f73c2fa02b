// Package tui is an interactive terminal front-end for a simulator: it draws
// the grid and offers start, pause, reset and speed controls.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Div9851/vacuum-sim/config"
	"github.com/Div9851/vacuum-sim/render"
	"github.com/Div9851/vacuum-sim/sim"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).MarginTop(1)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// tickMsg carries the generation of the tick chain that produced it. Starting
// or resetting bumps the generation so stale ticks are dropped.
type tickMsg struct {
	gen int
}

type Model struct {
	sim        *sim.Simulator
	intervalMs int
	gen        int
	err        error
}

func New(s *sim.Simulator) Model {
	return Model{
		sim:        s,
		intervalMs: config.ClampInterval(s.Config.StepIntervalMs),
	}
}

func (m Model) Interval() time.Duration {
	return time.Duration(m.intervalMs) * time.Millisecond
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.Interval(), func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		if msg.gen != m.gen || m.sim.Status != sim.RUNNING {
			return m, nil
		}
		m.sim.Next()
		if m.sim.Status == sim.FINISHED {
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "s", " ":
		if m.sim.Status == sim.RUNNING || m.sim.Status == sim.FINISHED {
			return m, nil
		}
		m.sim.Start()
		m.gen++
		return m, m.tick()
	case "p":
		m.sim.Pause()
	case "r":
		m.gen++
		m.err = m.sim.Reset()
	case "+", "=":
		m.intervalMs = config.ClampInterval(m.intervalMs - config.StepIntervalStepMs)
	case "-", "_":
		m.intervalMs = config.ClampInterval(m.intervalMs + config.StepIntervalStepMs)
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Smart Vacuum Cleaner Simulation"))
	sb.WriteString("\n")
	sb.WriteString(render.Text(m.sim.Frame()))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Speed: %dms/step", m.intervalMs))
	if m.err != nil {
		sb.WriteString("\n")
		sb.WriteString(errStyle.Render(m.err.Error()))
	}
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("s start  p pause  r reset  +/- speed  q quit"))
	sb.WriteString("\n")
	return sb.String()
}

// Run blocks until the user quits.
func Run(s *sim.Simulator) error {
	_, err := tea.NewProgram(New(s)).Run()
	return err
}
