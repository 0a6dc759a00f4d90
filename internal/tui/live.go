package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/mhalvorsen/odelab/internal/integrators"
	"github.com/mhalvorsen/odelab/internal/ode"
)

const historyCapacity = 200

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	stateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	pausedTag  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")).Render("paused")
)

type TickMsg time.Time

// Model steps the Euler integrator in real time and draws the most
// recent window of the first state variable.
type Model struct {
	system  string
	f       ode.Func
	stepper *integrators.Euler

	x       ode.State
	initial ode.State
	t, dt   float64
	tStop   float64
	running bool
	done    bool

	history []float64
}

func NewModel(system string, f ode.Func, x0 ode.State, dt, tStop float64) Model {
	return Model{
		system:  system,
		f:       f,
		stepper: integrators.NewEuler(),
		x:       x0.Clone(),
		initial: x0.Clone(),
		dt:      dt,
		tStop:   tStop,
		running: true,
		history: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.x = m.initial.Clone()
			m.t = 0
			m.done = false
			m.history = m.history[:0]
		}
		return m, nil

	case TickMsg:
		if m.running && !m.done {
			// a few substeps per frame
			for i := 0; i < 4 && m.t < m.tStop; i++ {
				m.x = m.stepper.Step(m.f, m.x, m.t, m.dt)
				m.t += m.dt
			}
			if m.t >= m.tStop {
				m.done = true
			}
			if len(m.x) > 0 {
				m.history = append(m.history, m.x[0])
				if len(m.history) > historyCapacity {
					m.history = m.history[1:]
				}
			}
		}
		return m, tick()
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	title := fmt.Sprintf("%s  t=%.2f / %.2f", m.system, m.t, m.tStop)
	if !m.running {
		title += "  " + pausedTag
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if len(m.history) >= 2 {
		b.WriteString(asciigraph.Plot(m.history,
			asciigraph.Height(12),
			asciigraph.Width(70),
		))
		b.WriteString("\n\n")
	}

	var state strings.Builder
	for i, v := range m.x {
		if i >= 4 {
			break
		}
		fmt.Fprintf(&state, "x%d=%.4f  ", i, v)
	}
	b.WriteString(stateStyle.Render(state.String()))

	b.WriteString(helpStyle.Render("\nspace pause · r reset · q quit"))
	b.WriteString("\n")

	return b.String()
}

// Run starts the live view and blocks until the user quits.
func Run(system string, f ode.Func, x0 ode.State, dt, tStop float64) error {
	p := tea.NewProgram(NewModel(system, f, x0, dt, tStop))
	_, err := p.Run()
	return err
}
