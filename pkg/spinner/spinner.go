package spinner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type errMsg error

// Message updates the probe unit identified by ID. Stage replaces the
// displayed stage text ("fetching manifest", "estimating size", ...).
type Message struct {
	ID    any
	Stage string
	Err   error
	Done  bool
}

type Model struct {
	cancelFunc context.CancelFunc
	order      []any
	units      map[any]*unit
	spinner    spinner.Model
	err        error
	width      int
	doneCount  int
	program    *tea.Program
	C          chan Message
}

// Unit can be whatever satisfies UnitProvider interface
func New[T UnitProvider](probeUnits []T, spinnerModel string, cancelFunc context.CancelFunc) *Model {
	order := make([]any, 0, len(probeUnits))
	units := make(map[any]*unit, len(probeUnits))
	doneCount := 0

	for _, p := range probeUnits {
		id := p.GetID()
		err := p.GetError()
		order = append(order, id)
		units[id] = &unit{
			title: p.GetTitle(),
			err:   err,
			done:  err != nil,
		}
		if err != nil {
			doneCount++
		}
	}

	s := spinner.New()
	s.Spinner = validateSpinnerModel(spinnerModel)
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &Model{
		cancelFunc: cancelFunc,
		order:      order,
		units:      units,
		spinner:    s,
		doneCount:  doneCount,
		C:          make(chan Message, len(probeUnits)),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForMsg())
}

func (m *Model) waitForMsg() tea.Cmd {
	return func() tea.Msg {
		return <-m.C
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.units) == m.doneCount {
		m.exit()
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.QuitMsg:
		m.exit()
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.exit()
			return m, tea.Quit
		default:
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case errMsg:
		m.err = msg
		return m, nil

	case Message:
		if u, ok := m.units[msg.ID]; ok {
			if msg.Err != nil {
				u.err = msg.Err
			}
			if msg.Stage != "" {
				u.stage = msg.Stage
			}
			if u.started.IsZero() {
				u.started = time.Now()
			}
			if msg.Done && !u.done {
				u.done = true
				m.doneCount++
			}
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, tea.Batch(cmd, m.waitForMsg())

	default:
		m.updateTime()
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, tea.Batch(cmd, m.waitForMsg())
	}
}

func (m *Model) exit() {
	for _, u := range m.units {
		u.done = true
	}
	m.cancelFunc()
}

func (m *Model) updateTime() {
	for _, u := range m.units {
		if !u.done && !u.started.IsZero() {
			u.elapsed = time.Since(u.started)
		}
	}
}

func (m Model) View() string {
	if m.err != nil {
		return m.err.Error()
	}

	var str strings.Builder
	for _, id := range m.order {
		str.WriteString(m.formatUnit(*m.units[id]))
		str.WriteString("\n")
	}
	return str.String()
}

func (m Model) formatUnit(u unit) string {
	if u.err != nil {
		return wrapText(errorMsg(u.title, u.err), m.width-4)
	}

	if u.done {
		return wrapText(successMsg(u.title, u.elapsed), m.width-4)
	}

	parts := []string{m.spinner.View(), wrapText(u.title, m.width-4)}
	if u.stage != "" {
		parts = append(parts, u.stage)
	}
	if u.elapsed > 0 {
		parts = append(parts, fmt.Sprintf("[%s]", u.elapsed.Truncate(time.Second)))
	}
	return strings.Join(parts, " ")
}

func wrapText(s string, limit int) string {
	if limit <= 0 || len(s) < limit {
		return s
	}

	var parts []string
	for len(s) > limit {
		parts = append(parts, s[:limit])
		s = s[limit:]
	}
	parts = append(parts, s)
	return strings.Join(parts, "\n")
}

func successMsg(title string, elapsed time.Duration) string {
	return fmt.Sprintf("✅ %s [%s]", title, elapsed.Truncate(time.Second))
}

func errorMsg(title string, err error) string {
	return fmt.Sprintf("❌ %s: %s", title, err.Error())
}

func (m *Model) Run() {
	m.program = tea.NewProgram(m)
	if _, err := m.program.Run(); err != nil {
		fmt.Printf("Error starting program: %v\n", err)
		panic(err)
	}
}

func (m Model) Quit() {
	if m.program != nil {
		m.program.Quit()
	}
}
