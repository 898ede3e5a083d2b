package table

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if isScrollMouse(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if !m.focused {
		return m, cmd
	}

	// A left press on a cell focuses its editable area, which selects it.
	// Presses outside any cell are ignored.
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if m.menu.open {
			m.menu.open = false
		}
		if ref, ok := m.hitCell(msg.X, msg.Y); ok {
			m.grid.SetSelection(ref)
		}
		return m.finish(), cmd
	}

	return m, cmd
}

func isScrollMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}
