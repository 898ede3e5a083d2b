package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ljungmark/lattice/table"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

type model struct {
	table  table.Model
	status string
}

func newModel() model {
	cfg := table.Config{
		Content: [][]string{
			{"Name", "Role", "Location"},
			{"Ada", "Engineering", "London"},
			{"Linus", "Kernel", "Helsinki"},
		},
		Style: table.DefaultStyle(),
	}
	return model{
		table:  table.New(cfg),
		status: "arrows move · type to edit · ctrl+enter new row · ctrl+t actions · ctrl+c quit",
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table = m.table.SetSize(msg.Width, msg.Height-1)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case table.AreaActivatedMsg:
		m.status = fmt.Sprintf("new row %d active, cursor at start", msg.Row)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) View() string {
	status := m.status
	if sel, ok := m.table.Selection(); ok {
		status = fmt.Sprintf("cell %d,%d · %s", sel.Row, sel.Col, m.status)
	}
	return m.table.View() + "\n" + statusStyle.Render(status)
}

func main() {
	p := tea.NewProgram(newModel(), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
