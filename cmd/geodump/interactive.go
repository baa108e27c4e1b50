package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/luxalpa/houdini-node/runtime"
)

var (
	selectedTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(lipgloss.Color("#7D56F4")).
				Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

var entityNames = []string{"points", "vertices", "prims", "detail"}

type browserModel struct {
	batch  *runtime.Batch
	table  table.Model
	geo    int
	entity int
}

func newBrowserModel(batch *runtime.Batch) *browserModel {
	m := &browserModel{batch: batch}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Attribute", Width: 20},
			{Title: "Kind", Width: 14},
			{Title: "Tuple size", Width: 10},
			{Title: "Tuples", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).Foreground(lipgloss.Color("#98FB98"))
	s.Selected = s.Selected.Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#7D56F4"))
	t.SetStyles(s)

	m.table = t
	m.refresh()
	return m
}

func (m *browserModel) refresh() {
	var rows []table.Row
	if m.geo < m.batch.Len() {
		attrs := entities(m.batch.Geos[m.geo])[m.entity].Attrs
		for _, name := range sortedNames(attrs) {
			a := attrs[name]
			rows = append(rows, table.Row{
				name,
				a.Data.Kind().String(),
				strconv.Itoa(a.TupleSize),
				strconv.Itoa(a.Tuples()),
			})
		}
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

func (m *browserModel) Init() tea.Cmd {
	return nil
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.entity = (m.entity + 1) % len(entityNames)
			m.refresh()
			return m, nil
		case "shift+tab":
			m.entity = (m.entity + len(entityNames) - 1) % len(entityNames)
			m.refresh()
			return m, nil
		case "right", "l":
			if m.geo+1 < m.batch.Len() {
				m.geo++
				m.refresh()
			}
			return m, nil
		case "left", "h":
			if m.geo > 0 {
				m.geo--
				m.refresh()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *browserModel) View() string {
	header := titleStyle.Render(fmt.Sprintf("input %d/%d", m.geo, m.batch.Len()))
	header += "  "
	for i, name := range entityNames {
		if i == m.entity {
			header += selectedTabStyle.Render(name)
		} else {
			header += tabStyle.Render(name)
		}
	}

	return header + "\n\n" + m.table.View() + "\n\n" +
		helpStyle.Render("tab entity • ←/→ input • ↑/↓ scroll • q quit")
}

func runInteractive(batch *runtime.Batch) error {
	if batch.Len() == 0 {
		return fmt.Errorf("batch holds no geometry")
	}
	p := tea.NewProgram(newBrowserModel(batch), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
