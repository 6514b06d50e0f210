// Package browse steps through a pipeline interactively: each element's
// column report on the left, running statistics and a range trend chart
// on the right.
package browse

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/samplescope/internal/pipeline"
	"github.com/san-kum/samplescope/internal/sample"
	"github.com/san-kum/samplescope/internal/view"
)

var (
	reportStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(45)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model pulls elements from a source and keeps the latest report plus
// the inspector's running statistics.
type Model struct {
	src      pipeline.Source
	insp     *view.ColumnInspector
	name     string
	interval time.Duration

	report   string
	running  bool
	done     bool
	selected int
	showHelp bool
}

// NewModel builds a browse session over src. A nil column selector
// inspects every column.
func NewModel(src pipeline.Source, cols sample.Cols, name string, interval time.Duration) Model {
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}
	return Model{
		src:      src,
		insp:     view.NewColumnInspector(cols, view.InspectorOptions{Out: io.Discard}),
		name:     name,
		interval: interval,
		running:  true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and pulls the next element on ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			m.advance()
		case "tab":
			m.cycleColumn()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running && !m.done {
			m.advance()
		}
		return m, tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// advance pulls one element, renders its report and records statistics.
func (m *Model) advance() {
	e, ok := m.src.Next()
	if !ok {
		m.done = true
		m.running = false
		return
	}
	m.report = m.insp.Report(e)
	m.insp.Process(e)
}

func (m *Model) cycleColumn() {
	cols := m.tensorColumns()
	if len(cols) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(cols)
}

// tensorColumns lists the columns with range history, ascending.
func (m *Model) tensorColumns() []int {
	var cols []int
	for i, st := range m.insp.Stats() {
		if len(st.Maxs) > 0 {
			cols = append(cols, i)
		}
	}
	sort.Ints(cols)
	return cols
}

// View renders the report panel next to the statistics panel.
func (m Model) View() string {
	status := "RUNNING"
	if m.done {
		status = "END OF STREAM"
	} else if !m.running {
		status = "PAUSED"
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.name)) + "\n")
	s.WriteString(status + "\n\n")
	s.WriteString(labelStyle.Render("Items") + valueStyle.Render(fmt.Sprintf("%d", m.insp.Count())) + "\n")

	cols := m.tensorColumns()
	if len(cols) > 0 {
		sel := m.selected % len(cols)
		st := m.insp.Stats()[cols[sel]]
		s.WriteString("\nCOLUMNS\n")
		for i, c := range cols {
			cs := m.insp.Stats()[c]
			line := fmt.Sprintf("%-3d %-8s range %.2f..%.2f", c, cs.TypeName,
				cs.Mins[len(cs.Mins)-1], cs.Maxs[len(cs.Maxs)-1])
			if i == sel {
				s.WriteString(activeStyle.Render("> "+line) + "\n")
			} else {
				s.WriteString("  " + labelStyle.Render(line) + "\n")
			}
		}
		if len(st.Maxs) > 1 {
			chart := asciigraph.Plot(st.Maxs, asciigraph.Height(4), asciigraph.Width(30),
				asciigraph.Caption(fmt.Sprintf("col %d max", cols[sel])))
			s.WriteString(graphStyle.Render(chart) + "\n")
		}
	}
	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause N:Step Q:Quit\nTab:Column ?:Help"))

	report := m.report
	if report == "" {
		report = "(waiting for first element)"
	}
	mainView := lipgloss.JoinHorizontal(lipgloss.Top,
		reportStyle.Render(report), statsStyle.Render(s.String()))
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume stream      ║
║  N        - Pull one element         ║
║  Tab      - Cycle chart column       ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// Run drives the session until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
